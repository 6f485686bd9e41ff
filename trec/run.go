package trec

import (
	"github.com/hscells/trecresults"
	"io"
	"math"
	"sort"
	"strconv"
)

// Run indexes the ranked lists of a TREC results file by topic.
type Run struct {
	lists map[string]trecresults.ResultList
}

// ReadRun reads results in the form `topic iteration document rank score run`. The rank
// column is ignored: each topic is re-ranked by descending score, breaking ties by
// ascending document identifier, so the order does not depend on the order of the file.
// When a document appears twice for a topic the last line wins.
func ReadRun(r io.Reader) (*Run, error) {
	byTopic := make(map[string]map[string]*trecresults.Result)
	err := readFields(r, 6, func(line int, text string, fields []string) error {
		score, err := strconv.ParseFloat(fields[4], 64)
		if err != nil || math.IsNaN(score) {
			return MalformedInputError{Line: line, Text: text, Reason: "score is not a number"}
		}
		topic := fields[0]
		docs, ok := byTopic[topic]
		if !ok {
			docs = make(map[string]*trecresults.Result)
			byTopic[topic] = docs
		}
		docs[fields[2]] = &trecresults.Result{
			Topic:     topic,
			Iteration: fields[1],
			DocId:     fields[2],
			Score:     score,
			RunName:   fields[5],
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	run := &Run{lists: make(map[string]trecresults.ResultList, len(byTopic))}
	for topic, docs := range byTopic {
		list := make(trecresults.ResultList, 0, len(docs))
		for _, res := range docs {
			list = append(list, res)
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].Score != list[j].Score {
				return list[i].Score > list[j].Score
			}
			return list[i].DocId < list[j].DocId
		})
		for i := range list {
			list[i].Rank = int64(i + 1)
		}
		run.lists[topic] = list
	}
	return run, nil
}

// LoadRun reads a results file from disk.
func LoadRun(path string) (*Run, error) {
	var run *Run
	err := openWith(path, "results", func(r io.Reader) (err error) {
		run, err = ReadRun(r)
		return
	})
	return run, err
}

// Topics returns the ranked topics in ascending order.
func (r *Run) Topics() []string {
	topics := make([]string, 0, len(r.lists))
	for topic := range r.lists {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Has reports whether the run contains a ranking for the topic.
func (r *Run) Has(topic string) bool {
	_, ok := r.lists[topic]
	return ok
}

// Ranked returns the first depth documents ranked for a topic, or all of them when depth
// is zero. Unknown topics give an empty list.
func (r *Run) Ranked(topic string, depth int) trecresults.ResultList {
	list := r.lists[topic]
	if depth > 0 && depth < len(list) {
		list = list[:depth]
	}
	out := make(trecresults.ResultList, len(list))
	copy(out, list)
	return out
}
