package judge

import "github.com/jwebster45206/detective-quest/pkg/ledger"

// MinimumEvidence is the number of clues that must point to the accused for
// an accusation to stand.
const MinimumEvidence = 2

// Verdict is the outcome of an accusation.
type Verdict struct {
	Accused   string `json:"accused"`
	Evidence  int    `json:"evidence"`
	Threshold int    `json:"threshold"`
	Solved    bool   `json:"solved"`
}

// Verify counts the ledger records pointing to accused and decides the case.
// The ledger is not modified.
func Verify(l *ledger.Ledger, accused string) Verdict {
	n := l.CountMatching(accused)
	return Verdict{
		Accused:   accused,
		Evidence:  n,
		Threshold: MinimumEvidence,
		Solved:    n >= MinimumEvidence,
	}
}

// Missing returns how many more clues would have been needed.
func (v Verdict) Missing() int {
	if v.Solved {
		return 0
	}
	return v.Threshold - v.Evidence
}
