package harness

// Tally counts comparison outcomes. Both counters only grow during a run.
type Tally struct {
	Passed uint64
	Failed uint64
}

// Record counts one comparison.
func (t *Tally) Record(ok bool) {
	if ok {
		t.Passed++
	} else {
		t.Failed++
	}
}

// OK reports whether no comparison failed.
func (t Tally) OK() bool {
	return t.Failed == 0
}

// Total is the number of comparisons recorded.
func (t Tally) Total() uint64 {
	return t.Passed + t.Failed
}
