package output

import (
	"fmt"
	"strings"
)

// PlainEvaluationFormatter writes `topic<TAB>score` for the primary measure of each topic,
// followed by `all<TAB>mean`.
func PlainEvaluationFormatter(e Evaluation, perTopic bool) (string, error) {
	var b strings.Builder
	if perTopic {
		for _, topic := range e.Topics {
			fmt.Fprintf(&b, "%s\t%.4f\n", topic, e.PerTopic[topic][e.Primary])
		}
	}
	fmt.Fprintf(&b, "%s\t%.4f\n", All, e.Summary[e.Primary])
	return b.String(), nil
}
