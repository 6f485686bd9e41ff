package eval

import (
	"fmt"
	"github.com/hscells/trecresults"
	"math"
	"sort"
)

// Unjudged marks a ranked document that has no relevance judgement.
const Unjudged = -1.0

// The recursion is summed well past the end of any ranking so that the weights of the
// positions a user would never see are accounted for. Users looking for more relevant
// documents are more persistent, so larger T values need a longer horizon.
const (
	shortHorizon = 20000
	longHorizon  = 200000
)

func horizon(t float64, n int) int {
	h := shortHorizon
	if t > 5 {
		h = longHorizon
	}
	if n > h {
		return n
	}
	return h
}

// Rate computes the expected rate of gain of a ranking under the INST user model
// (Moffat, Bailey, Scholer and Thomas, ADCS 2015, Algorithm 1). Positions past n, past
// the end of gains, or holding Unjudged take the gain fill.
//
// At rank i the user has T_i = T - (gain seen so far) left to find, and continues to
// rank i+1 with probability ((i+T+T_i-1)/(i+T+T_i))^2.
func Rate(gains []float64, t float64, n int, fill float64) float64 {
	var score, sumW float64
	w := 1.0
	remaining := t
	h := horizon(t, n)
	for i := 1; i <= h; i++ {
		r := fill
		if i <= n && i <= len(gains) && gains[i-1] != Unjudged {
			r = gains[i-1]
		}
		remaining -= r
		score += r * w
		sumW += w

		k := float64(i)
		c := (k + t + remaining - 1) / (k + t + remaining)
		w *= c * c
	}
	return score / sumW
}

// Ideal is the gain vector of a perfect binary ranking of totalRelevant documents.
func Ideal(totalRelevant int) []float64 {
	if totalRelevant <= 0 {
		return nil
	}
	ideal := make([]float64, totalRelevant)
	for i := range ideal {
		ideal[i] = 1
	}
	return ideal
}

// Scorer computes normalised INST scores for a fixed T and depth cutoff.
type Scorer struct {
	T     float64
	Depth int
}

// NewScorer validates T and the depth cutoff. A depth of zero means no cutoff.
func NewScorer(t float64, depth int) (Scorer, error) {
	if !(t > 0) || math.IsInf(t, 1) {
		return Scorer{}, ConfigurationError{Reason: fmt.Sprintf("T must be a positive number, got %v", t)}
	}
	if depth < 0 {
		return Scorer{}, ConfigurationError{Reason: fmt.Sprintf("depth must not be negative, got %d", depth)}
	}
	return Scorer{T: t, Depth: depth}, nil
}

// Score is the rate of gain of ranked normalised by that of ideal, in [0, 1]. With a
// depth cutoff both are evaluated to that depth; without one, the ideal ranking is
// evaluated in full. Unjudged and unretrieved positions are not relevant. A
// ranking with no documents, or an ideal without gain, scores zero.
func (s Scorer) Score(ranked, ideal []float64) float64 {
	if len(ranked) == 0 || !hasGain(ideal) {
		return 0
	}
	n, idealN := s.cutoff(len(ranked), len(ideal))
	best := Rate(ideal, s.T, idealN, 0)
	if best <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, Rate(ranked, s.T, n, 0)/best))
}

// UpperBound is the score the ranking would receive if every unjudged document it
// retrieves within the cutoff were judged fully relevant: those documents gain one and
// join the ideal ranking. Positions past the ranking or the cutoff stay non-relevant.
// Topics without relevant judgements score zero.
func (s Scorer) UpperBound(ranked, ideal []float64) float64 {
	if len(ranked) == 0 || !hasGain(ideal) {
		return 0
	}
	n, _ := s.cutoff(len(ranked), len(ideal))
	assessed := make([]float64, len(ranked))
	var extra int
	for i, g := range ranked {
		switch {
		case g != Unjudged:
			assessed[i] = g
		case i < n:
			assessed[i] = 1
			extra++
		}
	}
	// Gains never exceed one, so the assumed documents head the ideal ranking.
	return s.Score(assessed, append(Ideal(extra), ideal...))
}

// cutoff gives the depth ranked and ideal gains are evaluated to.
func (s Scorer) cutoff(ranked, ideal int) (n, idealN int) {
	if s.Depth > 0 {
		return s.Depth, s.Depth
	}
	if ideal > ranked {
		return ranked, ideal
	}
	return ranked, ranked
}

func hasGain(gains []float64) bool {
	for _, g := range gains {
		if g > 0 {
			return true
		}
	}
	return false
}

// INST evaluates a ranked list with the adaptive INST measure.
type INST struct {
	Scorer Scorer
	Gain   Gain
}

// NewINST creates an INST evaluator. A nil gain uses BinaryGain.
func NewINST(scorer Scorer, gain Gain) INST {
	if gain == nil {
		gain = BinaryGain
	}
	return INST{Scorer: scorer, Gain: gain}
}

// Gains converts a ranked list into gains, with Unjudged for documents missing from the
// judgements, and derives the ideal gains from the judgements.
func (e INST) Gains(results *trecresults.ResultList, qrels trecresults.Qrels) (ranked, ideal []float64) {
	ranked = make([]float64, len(*results))
	for i, result := range *results {
		if qrel, ok := qrels[result.DocId]; ok {
			ranked[i] = e.Gain(qrel.Score)
		} else {
			ranked[i] = Unjudged
		}
	}

	for _, qrel := range qrels {
		if g := e.Gain(qrel.Score); g > 0 {
			ideal = append(ideal, g)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))
	return
}

func (e INST) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	ranked, ideal := e.Gains(results, qrels)
	return e.Scorer.Score(ranked, ideal)
}

func (e INST) Name() string {
	return "inst"
}
