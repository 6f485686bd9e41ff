package eval

import "github.com/hscells/trecresults"

// Evaluator is an interface for evaluating a retrieved list of documents.
type Evaluator interface {
	Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64
	Name() string
}

// Evaluate scores a single topic's ranked list with each of the supplied evaluation
// measures, keyed by measure name.
func Evaluate(evaluators []Evaluator, results *trecresults.ResultList, qrels trecresults.Qrels) map[string]float64 {
	scores := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		scores[evaluator.Name()] = evaluator.Score(results, qrels)
	}
	return scores
}
