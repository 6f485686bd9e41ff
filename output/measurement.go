package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CsvEvaluationFormatter outputs results in CSV format, one row per topic and a final
// row for the summary.
func CsvEvaluationFormatter(e Evaluation, perTopic bool) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	h := []string{"Topic"}
	h = append(h, e.Measures...)
	if err := w.Write(h); err != nil {
		return "", err
	}
	if perTopic {
		for _, topic := range e.Topics {
			if err := w.Write(csvRecord(topic, e.Measures, e.PerTopic[topic])); err != nil {
				return "", err
			}
		}
	}
	if err := w.Write(csvRecord(All, e.Measures, e.Summary)); err != nil {
		return "", err
	}
	w.Flush()
	return b.String(), w.Error()
}

func csvRecord(topic string, measures []string, values map[string]float64) []string {
	record := make([]string, len(measures)+1)
	record[0] = topic
	for i, measure := range measures {
		record[i+1] = strconv.FormatFloat(values[measure], 'f', -1, 64)
	}
	return record
}
