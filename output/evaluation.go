// Package output provides different formats of output for evaluations.
package output

import (
	"encoding/json"
	"github.com/pkg/errors"
	"sort"
	"strings"
)

// All labels the summary over every evaluated topic.
const All = "all"

// Evaluation is the result of evaluating a run: the measurements of each topic and a
// summary over all of them. Count measures (prefixed num_) are summed in the summary,
// the others are averaged.
type Evaluation struct {
	// Primary is the measure reported by the plain format.
	Primary  string
	Topics   []string
	Measures []string
	PerTopic map[string]map[string]float64
	Summary  map[string]float64
	NumQ     int
}

// EvaluationFormatter renders an evaluation; perTopic controls whether each topic is
// written before the summary.
type EvaluationFormatter func(e Evaluation, perTopic bool) (string, error)

// Formatters are the available evaluation formats by name.
var Formatters = map[string]EvaluationFormatter{
	"plain": PlainEvaluationFormatter,
	"trec":  TrecEvaluationFormatter,
	"json":  JsonEvaluationFormatter,
	"csv":   CsvEvaluationFormatter,
}

// Formatter looks up an evaluation format by name.
func Formatter(name string) (EvaluationFormatter, error) {
	if f, ok := Formatters[name]; ok {
		return f, nil
	}
	names := make([]string, 0, len(Formatters))
	for n := range Formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, errors.Errorf("unknown format %q, expected one of %s", name, strings.Join(names, ", "))
}

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(e Evaluation, perTopic bool) (string, error) {
	results := make(map[string]map[string]float64)
	if perTopic {
		for _, topic := range e.Topics {
			results[topic] = e.PerTopic[topic]
		}
	}
	summary := make(map[string]float64, len(e.Summary)+1)
	for measure, value := range e.Summary {
		summary[measure] = value
	}
	summary["num_q"] = float64(e.NumQ)
	results[All] = summary

	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v) + "\n", nil
}

func isCount(measure string) bool {
	return strings.HasPrefix(measure, "num_")
}
