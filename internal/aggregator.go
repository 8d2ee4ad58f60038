package logtally

type aggregator struct {
	severities *tally
	addresses  *tally
	lines      int
}

func (a *aggregator) ingest(g lineGroup) {
	for _, l := range g {
		c := classify(l)
		if c.severity != "" {
			a.severities.add(c.severity, 1)
		}
		for _, ip := range c.addresses {
			a.addresses.add(ip, 1)
		}
	}
	a.lines += len(g)
}

func (a *aggregator) result() *Result {
	return &Result{
		Lines:      a.lines,
		severities: a.severities,
		addresses:  a.addresses,
	}
}

func newAggregator() *aggregator {
	return &aggregator{
		severities: newTally(),
		addresses:  newTally(),
	}
}
