package eval

import (
	"gonum.org/v1/gonum/stat"
	"sort"
)

// Policy selects the set of topics an evaluation averages over.
type Policy int

const (
	// Intersection evaluates topics that are both judged and ranked.
	Intersection Policy = iota
	// Complete evaluates every judged topic; judged topics without a ranking score zero.
	// This is -c in trec_eval.
	Complete
)

func (p Policy) String() string {
	if p == Complete {
		return "complete"
	}
	return "intersection"
}

// Topics returns the topics to evaluate under the policy, in ascending order.
func (p Policy) Topics(judged, ranked []string) []string {
	inJudged := make(map[string]bool, len(judged))
	for _, topic := range judged {
		inJudged[topic] = true
	}

	var topics []string
	if p == Complete {
		topics = append(topics, judged...)
	} else {
		for _, topic := range ranked {
			if inJudged[topic] {
				topics = append(topics, topic)
			}
		}
	}
	sort.Strings(topics)
	return topics
}

// TopicScore is the score of a single topic.
type TopicScore struct {
	Topic string
	Score float64
}

// Aggregate selects per-topic scores under the policy and averages them. Scores for
// topics that are not judged are never counted. Under Complete, judged topics missing
// from scores contribute zero. The mean of no topics is zero.
func Aggregate(scores map[string]float64, judged []string, policy Policy) ([]TopicScore, float64) {
	ranked := make([]string, 0, len(scores))
	for topic := range scores {
		ranked = append(ranked, topic)
	}

	topics := policy.Topics(judged, ranked)
	if len(topics) == 0 {
		return nil, 0
	}

	results := make([]TopicScore, len(topics))
	values := make([]float64, len(topics))
	for i, topic := range topics {
		results[i] = TopicScore{Topic: topic, Score: scores[topic]}
		values[i] = scores[topic]
	}
	return results, stat.Mean(values, nil)
}
