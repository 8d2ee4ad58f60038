package logtally

// Result holds the tallies of one completed analysis run. It is owned by
// the caller and never shared with other runs.
type Result struct {
	Lines int

	severities *tally
	addresses  *tally
}

func (r *Result) Severity(label string) int {
	return r.severities.get(label)
}

// Severities returns the severity counts in first-seen order.
func (r *Result) Severities() []Entry {
	return r.severities.entries()
}

func (r *Result) Address(ip string) int {
	return r.addresses.get(ip)
}

// Addresses returns the address counts in first-seen order.
func (r *Result) Addresses() []Entry {
	return r.addresses.entries()
}

// TopAddresses returns at most n addresses by descending count, ties in
// first-seen order.
func (r *Result) TopAddresses(n int) []Entry {
	return r.addresses.top(n)
}

// Report takes a snapshot of r with the n most frequent addresses.
func (r *Result) Report(n int) *Report {
	return &Report{
		LogLevels:    r.Severities(),
		TopAddresses: r.TopAddresses(n),
		top:          n,
	}
}
