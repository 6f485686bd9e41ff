package eval

import (
	"github.com/hscells/trecresults"
	"math"
)

// UpperBoundEvaluator is the larger of the INST score and the score the ranking would
// receive were every unjudged document it retrieves relevant.
type UpperBoundEvaluator struct {
	INST
}

func (u UpperBoundEvaluator) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	ranked, ideal := u.Gains(results, qrels)
	return math.Max(u.Scorer.Score(ranked, ideal), u.Scorer.UpperBound(ranked, ideal))
}

func (u UpperBoundEvaluator) Name() string {
	return u.INST.Name() + "_max"
}

// ResidualEvaluator is the gap between the upper bound and the INST score: how much the
// score could still rise if the unjudged documents were assessed. It is zero when every
// retrieved document is judged.
type ResidualEvaluator struct {
	INST
}

func (r ResidualEvaluator) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	ranked, ideal := r.Gains(results, qrels)
	score := r.Scorer.Score(ranked, ideal)
	return math.Max(score, r.Scorer.UpperBound(ranked, ideal)) - score
}

func (r ResidualEvaluator) Name() string {
	return r.INST.Name() + "_res"
}

// NewUpperBoundEvaluator wraps an INST evaluator.
func NewUpperBoundEvaluator(e INST) UpperBoundEvaluator {
	return UpperBoundEvaluator{INST: e}
}

// NewResidualEvaluator wraps an INST evaluator.
func NewResidualEvaluator(e INST) ResidualEvaluator {
	return ResidualEvaluator{INST: e}
}
