package output

import (
	"fmt"
	"strings"
)

// TrecEvaluationFormatter outputs results in the same layout as trec_eval: one
// `measure<TAB>topic<TAB>value` line per measure.
func TrecEvaluationFormatter(e Evaluation, perTopic bool) (string, error) {
	var b strings.Builder
	if perTopic {
		for _, topic := range e.Topics {
			writeTrec(&b, topic, e.Measures, e.PerTopic[topic])
		}
	}
	writeTrecLine(&b, "num_q", All, float64(e.NumQ))
	writeTrec(&b, All, e.Measures, e.Summary)
	return b.String(), nil
}

func writeTrec(b *strings.Builder, topic string, measures []string, values map[string]float64) {
	for _, measure := range measures {
		writeTrecLine(b, measure, topic, values[measure])
	}
}

func writeTrecLine(b *strings.Builder, measure, topic string, value float64) {
	sep := "\t"
	if len(measure) < 8 {
		sep = "\t\t"
	}
	if isCount(measure) {
		fmt.Fprintf(b, "%s%s%s\t%d\n", measure, sep, topic, int64(value))
		return
	}
	fmt.Fprintf(b, "%s%s%s\t%.4f\n", measure, sep, topic, value)
}
