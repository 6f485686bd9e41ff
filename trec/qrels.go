package trec

import (
	"github.com/hscells/trecresults"
	"io"
	"sort"
	"strconv"
)

// Qrels indexes relevance judgements by topic and then by document.
type Qrels struct {
	file trecresults.QrelsFile
}

// ReadQrels reads judgements in the form `topic iteration document relevance`. When a
// (topic, document) pair appears more than once, the last judgement wins.
func ReadQrels(r io.Reader) (*Qrels, error) {
	q := &Qrels{file: trecresults.QrelsFile{Qrels: make(map[string]trecresults.Qrels)}}
	err := readFields(r, 4, func(line int, text string, fields []string) error {
		level, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return MalformedInputError{Line: line, Text: text, Reason: "relevance level is not an integer"}
		}
		topic := fields[0]
		docs, ok := q.file.Qrels[topic]
		if !ok {
			docs = make(trecresults.Qrels)
			q.file.Qrels[topic] = docs
		}
		docs[fields[2]] = &trecresults.Qrel{
			Topic:     topic,
			Iteration: fields[1],
			DocId:     fields[2],
			Score:     level,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

// LoadQrels reads a qrels file from disk.
func LoadQrels(path string) (*Qrels, error) {
	var q *Qrels
	err := openWith(path, "qrels", func(r io.Reader) (err error) {
		q, err = ReadQrels(r)
		return
	})
	return q, err
}

// Topics returns the judged topics in ascending order.
func (q *Qrels) Topics() []string {
	topics := make([]string, 0, len(q.file.Qrels))
	for topic := range q.file.Qrels {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Has reports whether the topic has any judgements.
func (q *Qrels) Has(topic string) bool {
	_, ok := q.file.Qrels[topic]
	return ok
}

// Judgements returns the judgements for a topic keyed by document, or nil.
func (q *Qrels) Judgements(topic string) trecresults.Qrels {
	return q.file.Qrels[topic]
}

// RelevantCount is the number of documents judged with a level above zero.
func (q *Qrels) RelevantCount(topic string) int {
	n := 0
	for _, qrel := range q.file.Qrels[topic] {
		if qrel.Score > 0 {
			n++
		}
	}
	return n
}

// LevelOf returns the relevance level of a document, or 0 when it is unjudged.
func (q *Qrels) LevelOf(topic, doc string) int64 {
	if qrel, ok := q.file.Qrels[topic][doc]; ok {
		return qrel.Score
	}
	return 0
}

// MaxLevel is the largest relevance level across every topic.
func (q *Qrels) MaxLevel() int64 {
	var max int64
	for _, docs := range q.file.Qrels {
		for _, qrel := range docs {
			if qrel.Score > max {
				max = qrel.Score
			}
		}
	}
	return max
}
