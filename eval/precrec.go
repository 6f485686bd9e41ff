package eval

import (
	"github.com/hscells/trecresults"
)

type numRel struct{}
type numRet struct{}
type numRelRet struct{}

var (
	// NumRel is the number of relevant documents.
	NumRel = numRel{}
	// NumRet is the number of retrieved documents.
	NumRet = numRet{}
	// NumRelRet is the number of relevant documents retrieved.
	NumRelRet = numRelRet{}
)

func (numRel) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	n := 0.0
	for _, qrel := range qrels {
		if qrel.Score > 0 {
			n++
		}
	}
	return n
}

func (numRel) Name() string {
	return "num_rel"
}

func (numRet) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	return float64(len(*results))
}

func (numRet) Name() string {
	return "num_ret"
}

func (numRelRet) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	n := 0.0
	for _, result := range *results {
		if qrel, ok := qrels[result.DocId]; ok && qrel.Score > 0 {
			n++
		}
	}
	return n
}

func (numRelRet) Name() string {
	return "num_rel_ret"
}
