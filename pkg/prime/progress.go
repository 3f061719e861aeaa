package prime

// Progress observes long-running test iterations. A nil Progress is valid
// and reports nothing.
type Progress func(done, total int)

func (p Progress) step(done, total int) {
	if p != nil {
		p(done, total)
	}
}
