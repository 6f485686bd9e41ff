package eval_test

import (
	"errors"
	"github.com/hscells/inst/eval"
	"github.com/hscells/trecresults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func scorer(t *testing.T, T float64, depth int) eval.Scorer {
	s, err := eval.NewScorer(T, depth)
	require.NoError(t, err)
	return s
}

func TestRateAllRelevant(t *testing.T) {
	for _, T := range []float64{0.5, 1, 3, 10} {
		assert.Equal(t, 1.0, eval.Rate(nil, T, 0, 1), "T=%v", T)
	}
}

func TestRateNothingRelevant(t *testing.T) {
	assert.Equal(t, 0.0, eval.Rate([]float64{0, 0, 0}, 2, 3, 0))
}

func TestRateUnjudgedTakesFill(t *testing.T) {
	judged := eval.Rate([]float64{1, 0, 1}, 2, 3, 0)
	unjudged := eval.Rate([]float64{1, eval.Unjudged, 1}, 2, 3, 0)
	assert.Equal(t, judged, unjudged)

	assert.Equal(t,
		eval.Rate([]float64{1, 1, 1}, 2, 3, 1),
		eval.Rate([]float64{1, eval.Unjudged, 1}, 2, 3, 1))
}

func TestScoreNoRelevantDocuments(t *testing.T) {
	s := scorer(t, 3, 0)
	assert.Equal(t, 0.0, s.Score([]float64{1, 1, 0}, eval.Ideal(0)))
	assert.Equal(t, 0.0, s.Score([]float64{0, 0}, nil))
	assert.Equal(t, 0.0, s.UpperBound([]float64{eval.Unjudged}, nil))
}

func TestScoreEmptyRanking(t *testing.T) {
	s := scorer(t, 3, 10)
	assert.Equal(t, 0.0, s.Score(nil, eval.Ideal(2)))
	assert.Equal(t, 0.0, s.UpperBound(nil, eval.Ideal(2)))
}

func TestScoreIdealRanking(t *testing.T) {
	for _, T := range []float64{0.25, 1, 2, 5, 6, 20} {
		for _, depth := range []int{0, 2, 3, 100} {
			s := scorer(t, T, depth)
			assert.Equal(t, 1.0, s.Score([]float64{1, 1, 0, 0}, eval.Ideal(2)), "T=%v depth=%d", T, depth)
			assert.Equal(t, 1.0, s.Score([]float64{1, 1}, eval.Ideal(2)), "T=%v depth=%d", T, depth)
		}
	}
}

func TestScoreConcreteScenario(t *testing.T) {
	s := scorer(t, 2, 0)
	got := s.Score([]float64{1, 0, 1}, eval.Ideal(2))
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
	assert.Equal(t, 1.0, s.Score([]float64{1, 1, 0}, eval.Ideal(2)))
}

func TestScoreMonotoneInRankOfRelevantDocument(t *testing.T) {
	for _, T := range []float64{1, 3, 8} {
		s := scorer(t, T, 0)
		prev := 1.0
		for k := 0; k < 6; k++ {
			ranked := make([]float64, 6)
			ranked[k] = 1
			got := s.Score(ranked, eval.Ideal(1))
			assert.LessOrEqual(t, got, prev, "T=%v rank=%d", T, k+1)
			prev = got
		}
		assert.Greater(t, prev, 0.0)
	}
}

func TestScoreMonotoneLastRelevantDocument(t *testing.T) {
	s := scorer(t, 3, 0)
	prev := 1.0
	for k := 2; k < 8; k++ {
		ranked := make([]float64, 8)
		ranked[0], ranked[1], ranked[k] = 1, 1, 1
		got := s.Score(ranked, eval.Ideal(3))
		assert.LessOrEqual(t, got, prev, "rank=%d", k+1)
		prev = got
	}
}

func TestScoreNonRelevantOrderInvariant(t *testing.T) {
	s := scorer(t, 2, 0)
	a := s.Score([]float64{0, 1, eval.Unjudged, 0, 1, 0}, eval.Ideal(3))
	b := s.Score([]float64{eval.Unjudged, 1, 0, 0, 1, 0}, eval.Ideal(3))
	assert.Equal(t, a, b)
}

func TestScoreDepthCutoff(t *testing.T) {
	s := scorer(t, 2, 3)
	full := []float64{0, 1, 0, 1, 1, 1}

	// Positions past the cutoff are never inspected.
	assert.Equal(t, s.Score(full, eval.Ideal(4)), s.Score(full[:3], eval.Ideal(4)))
	assert.Equal(t, s.Score(full, eval.Ideal(4)), s.Score([]float64{0, 1, 0, 0, 0, 0}, eval.Ideal(4)))

	// A ranking shorter than the cutoff is padded with non-relevant documents.
	assert.Equal(t, s.Score([]float64{0, 1}, eval.Ideal(4)), s.Score([]float64{0, 1, 0}, eval.Ideal(4)))
}

func TestScoreUpperBound(t *testing.T) {
	s := scorer(t, 2, 0)

	// Every retrieved document judged: nothing left to assess.
	judged := []float64{1, 0, 1}
	assert.Equal(t, s.Score(judged, eval.Ideal(2)), s.UpperBound(judged, eval.Ideal(2)))
	assert.Less(t, s.UpperBound(judged, eval.Ideal(2)), 1.0)

	// An unjudged document counts as relevant and joins the ideal ranking.
	ranked := []float64{1, eval.Unjudged, 0}
	assert.Equal(t, s.Score([]float64{1, 1, 0}, eval.Ideal(3)), s.UpperBound(ranked, eval.Ideal(2)))
	assert.Equal(t, s.Score([]float64{1, 0, 0}, eval.Ideal(2)), s.Score(ranked, eval.Ideal(2)))
	assert.InDelta(t, 0.7450588719, s.UpperBound(ranked, eval.Ideal(2)), 1e-8)
	assert.InDelta(t, 0.5400809783, s.Score(ranked, eval.Ideal(2)), 1e-8)
}

func TestScoreUpperBoundIgnoresPositionsPastCutoff(t *testing.T) {
	s := scorer(t, 2, 2)
	assert.Equal(t,
		s.Score([]float64{1, 0}, eval.Ideal(2)),
		s.UpperBound([]float64{1, 0, eval.Unjudged, eval.Unjudged}, eval.Ideal(2)))
}

func TestRateReferenceValues(t *testing.T) {
	gains := []float64{1, 0, eval.Unjudged, 1, 0}
	cases := []struct {
		T    float64
		n    int
		fill float64
		want float64
	}{
		{T: 1, n: 5, fill: 0, want: 0.6710949897},
		{T: 2, n: 5, fill: 0, want: 0.3781626520},
		{T: 3, n: 2, fill: 0, want: 0.1807721973},
		{T: 7, n: 5, fill: 0, want: 0.1291712773},
		{T: 2, n: 5, fill: 1, want: 0.7306163893},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, eval.Rate(gains, c.T, c.n, c.fill), 1e-8, "T=%v n=%d fill=%v", c.T, c.n, c.fill)
	}
}

func TestScoreReferenceValues(t *testing.T) {
	assert.InDelta(t, 0.8165126177, scorer(t, 2, 0).Score([]float64{1, 0, 1}, eval.Ideal(2)), 1e-8)
}

func TestNewScorerRejectsInvalidSettings(t *testing.T) {
	for _, T := range []float64{0, -1} {
		_, err := eval.NewScorer(T, 0)
		var cfg eval.ConfigurationError
		assert.True(t, errors.As(err, &cfg), "T=%v", T)
	}
	_, err := eval.NewScorer(1, -5)
	var cfg eval.ConfigurationError
	assert.True(t, errors.As(err, &cfg))
}

func TestINSTEvaluator(t *testing.T) {
	qrels := trecresults.Qrels{
		"D1": &trecresults.Qrel{Topic: "Q1", DocId: "D1", Score: 1},
		"D2": &trecresults.Qrel{Topic: "Q1", DocId: "D2", Score: 0},
		"D3": &trecresults.Qrel{Topic: "Q1", DocId: "D3", Score: 1},
	}
	results := trecresults.ResultList{
		&trecresults.Result{Topic: "Q1", DocId: "D1", Rank: 1, Score: 3},
		&trecresults.Result{Topic: "Q1", DocId: "D2", Rank: 2, Score: 2},
		&trecresults.Result{Topic: "Q1", DocId: "D3", Rank: 3, Score: 1},
	}
	ideal := trecresults.ResultList{results[0], results[2], results[1]}

	e := eval.NewINST(scorer(t, 2, 0), nil)
	got := e.Score(&results, qrels)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
	assert.Equal(t, 1.0, e.Score(&ideal, qrels))
	assert.Equal(t, "inst", e.Name())

	ranked, idealGains := e.Gains(&results, qrels)
	assert.Equal(t, []float64{1, 0, 1}, ranked)
	assert.Equal(t, []float64{1, 1}, idealGains)
}

func TestINSTGradedGains(t *testing.T) {
	qrels := trecresults.Qrels{
		"D1": &trecresults.Qrel{DocId: "D1", Score: 1},
		"D2": &trecresults.Qrel{DocId: "D2", Score: 2},
	}
	results := trecresults.ResultList{
		&trecresults.Result{DocId: "D1"},
		&trecresults.Result{DocId: "D9"},
		&trecresults.Result{DocId: "D2"},
	}
	e := eval.NewINST(scorer(t, 1, 0), eval.GradedGain(2))
	ranked, ideal := e.Gains(&results, qrels)
	assert.Equal(t, []float64{0.5, eval.Unjudged, 1}, ranked)
	assert.Equal(t, []float64{1, 0.5}, ideal)
}
