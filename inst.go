// Package inst evaluates TREC runs with INST, the adaptive effectiveness measure of
// Moffat, Bailey, Scholer and Thomas (ADCS 2015).
package inst

import (
	"fmt"
	"github.com/hscells/inst/eval"
	"github.com/hscells/inst/output"
	"github.com/hscells/inst/trec"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/cheggaaa/pb.v1"
	"log"
	"os"
	"strings"
)

// Measures are the measures reported for every topic, in output order.
var Measures = []string{
	eval.NumRet.Name(),
	eval.NumRel.Name(),
	eval.NumRelRet.Name(),
	"inst",
	"inst_max",
	"inst_res",
}

// Options controls an evaluation.
type Options struct {
	// Depth is the maximum rank evaluated; zero evaluates the full ranking.
	Depth int
	// Policy selects the topics that are evaluated and averaged.
	Policy eval.Policy
	// Graded scales gains by relevance level instead of treating relevance as binary.
	Graded bool
	// Progress displays a progress bar on stderr.
	Progress bool
}

// Evaluate scores every topic selected by the policy and summarises the scores. Topics
// are evaluated sequentially in ascending order. Any error, including a topic without
// a T value, aborts the evaluation.
func Evaluate(qrels *trec.Qrels, run *trec.Run, targets eval.TargetResolver, options Options) (output.Evaluation, error) {
	if options.Depth < 0 {
		return output.Evaluation{}, eval.ConfigurationError{Reason: fmt.Sprintf("depth must not be negative, got %d", options.Depth)}
	}

	gain := eval.Gain(eval.BinaryGain)
	if options.Graded {
		gain = eval.GradedGain(qrels.MaxLevel())
	}

	judged := qrels.Topics()
	for _, topic := range run.Topics() {
		if !qrels.Has(topic) {
			log.Printf("no qrels were found for topic %s, skipping", topic)
		}
	}
	topics := options.Policy.Topics(judged, run.Topics())

	var bar *pb.ProgressBar
	if options.Progress {
		bar = pb.New(len(topics))
		bar.Output = os.Stderr
		bar.Start()
	}

	perTopic := make(map[string]map[string]float64, len(topics))
	for _, topic := range topics {
		t, err := targets.Target(topic)
		if err != nil {
			return output.Evaluation{}, err
		}
		scorer, err := eval.NewScorer(t, options.Depth)
		if err != nil {
			return output.Evaluation{}, errors.Wrapf(err, "topic %s", topic)
		}

		if !run.Has(topic) {
			log.Printf("no results were found for topic %s", topic)
		}
		results := run.Ranked(topic, options.Depth)
		perTopic[topic] = eval.Evaluate(evaluators(scorer, gain), &results, qrels.Judgements(topic))

		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return output.Evaluation{
		Primary:  "inst",
		Topics:   topics,
		Measures: Measures,
		PerTopic: perTopic,
		Summary:  summarise(perTopic, judged, options.Policy),
		NumQ:     len(topics),
	}, nil
}

func evaluators(scorer eval.Scorer, gain eval.Gain) []eval.Evaluator {
	e := eval.NewINST(scorer, gain)
	return []eval.Evaluator{
		eval.NumRet,
		eval.NumRel,
		eval.NumRelRet,
		e,
		eval.NewUpperBoundEvaluator(e),
		eval.NewResidualEvaluator(e),
	}
}

// summarise averages each measure over the evaluated topics, except counts which are
// totalled in the manner of trec_eval.
func summarise(perTopic map[string]map[string]float64, judged []string, policy eval.Policy) map[string]float64 {
	summary := make(map[string]float64, len(Measures))
	for _, measure := range Measures {
		scores := make(map[string]float64, len(perTopic))
		for topic, values := range perTopic {
			scores[topic] = values[measure]
		}
		results, mean := eval.Aggregate(scores, judged, policy)
		if strings.HasPrefix(measure, "num_") {
			values := make([]float64, len(results))
			for i, r := range results {
				values[i] = r.Score
			}
			summary[measure] = floats.Sum(values)
			continue
		}
		summary[measure] = mean
	}
	return summary
}
