package pricefeed

import (
	"math/big"
	"time"
)

// Outcome is the result of pushing one token's price during a cycle
type Outcome struct {
	Symbol  Symbol
	USD     float64
	Answer  *big.Int // fixed-point value sent, nil if conversion was not reached
	Success bool
	TxID    string
	Err     error
}

// CycleReport aggregates the outcomes of one update cycle
type CycleReport struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Quotes     map[Symbol]Quote
	Outcomes   []Outcome

	// Err is set when the cycle ended before any submission (fetch failure or
	// a recovered panic).
	Err error
}

// Attempted returns the number of tokens a submission was attempted for.
func (r CycleReport) Attempted() int {
	return len(r.Outcomes)
}

// Succeeded returns the number of confirmed submissions.
func (r CycleReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Success {
			n++
		}
	}

	return n
}

// Failed returns the outcomes that did not succeed.
func (r CycleReport) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Success {
			failed = append(failed, o)
		}
	}

	return failed
}

// Outcome returns the outcome recorded for symbol.
func (r CycleReport) Outcome(symbol Symbol) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Symbol == symbol {
			return o, true
		}
	}

	return Outcome{}, false
}

// Duration returns how long the cycle took.
func (r CycleReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
