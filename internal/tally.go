package logtally

import "sort"

// Entry is a single key and its count, as exposed in reports.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// tally counts occurrences per key and remembers the order in which keys
// were first seen.
type tally struct {
	registry map[string]int
	order    []string
}

func (t *tally) add(k string, n int) {
	if _, f := t.registry[k]; !f {
		t.order = append(t.order, k)
	}
	t.registry[k] += n
}

func (t *tally) get(k string) int {
	return t.registry[k]
}

func (t *tally) len() int {
	return len(t.order)
}

func (t *tally) entries() []Entry {
	es := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		es = append(es, Entry{Name: k, Count: t.registry[k]})
	}

	return es
}

// top returns at most n entries by descending count. Equal counts keep
// first-seen order.
func (t *tally) top(n int) []Entry {
	es := t.entries()
	sort.SliceStable(es, func(i, j int) bool {
		return es[i].Count > es[j].Count
	})
	if n >= 0 && len(es) > n {
		es = es[:n]
	}

	return es
}

func newTally() *tally {
	return &tally{
		registry: make(map[string]int),
	}
}
