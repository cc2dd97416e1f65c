package eval

import (
	"fmt"

	"github.com/hscells/trecresults"
)

type numRel struct{}
type numRet struct{}
type numRelRet struct{}

// RecallAtK calculates recall at a rank cutoff. The denominator is the number
// of relevant documents capped at K, with a floor of 1 so that topics with no
// relevant documents score 0 rather than dividing by zero.
type RecallAtK struct {
	K int
}

// PrecisionAtK calculates precision at a rank cutoff. The denominator is
// always K, so positions past the end of a short result list count as
// non-relevant rather than being skipped.
type PrecisionAtK struct {
	K int
}

// FMeasure computes f-measure at a rank cutoff, with the beta parameter
// controlling the precision and recall trade-off.
type FMeasure struct {
	Beta float64
	K    int
}

var (
	// Recall calculates recall over an entire result list.
	Recall = RecallAtK{}
	// Precision calculates precision over an entire result list.
	Precision = PrecisionAtK{}
	// NumRel is the number of relevant documents.
	NumRel = numRel{}
	// NumRet is the number of retrieved documents.
	NumRet = numRet{}
	// NumRelRet is the number of relevant documents retrieved.
	NumRelRet = numRelRet{}

	// F1Measure is f-measure with beta=1.
	F1Measure = FMeasure{Beta: 1}
	// F05Measure is f-measure with beta=0.5.
	F05Measure = FMeasure{Beta: 0.5}
	// F3Measure is f-measure with beta=3.
	F3Measure = FMeasure{Beta: 3}
)

// relevantRetrieved counts the relevant documents in the top k of a result
// list, or in the whole list when k <= 0.
func relevantRetrieved(results *trecresults.ResultList, qrels trecresults.Qrels, k int) float64 {
	n := 0.0
	for i, result := range *results {
		if k > 0 && i >= k {
			break
		}
		if relevant(qrels, result.DocId) {
			n++
		}
	}
	return n
}

func (e RecallAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	denom := NumRel.Score(results, qrels)
	if e.K > 0 && float64(e.K) < denom {
		denom = float64(e.K)
	}
	if denom < 1 {
		denom = 1
	}
	return relevantRetrieved(results, qrels, e.K) / denom
}

func (e RecallAtK) Name() string {
	if e.K > 0 {
		return fmt.Sprintf("Recall@%d", e.K)
	}
	return "Recall"
}

func (e PrecisionAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	denom := float64(e.K)
	if e.K <= 0 {
		denom = float64(results.Len())
	}
	if denom == 0 {
		return 0.0
	}
	return relevantRetrieved(results, qrels, e.K) / denom
}

func (e PrecisionAtK) Name() string {
	if e.K > 0 {
		return fmt.Sprintf("Precision@%d", e.K)
	}
	return "Precision"
}

func (numRel) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	n := 0.0
	for _, qrel := range qrels {
		if qrel.Score > RelevanceGrade {
			n++
		}
	}
	return n
}

func (numRel) Name() string {
	return "NumRel"
}

func (numRet) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	return float64(results.Len())
}

func (numRet) Name() string {
	return "NumRet"
}

func (numRelRet) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	return relevantRetrieved(results, qrels, 0)
}

func (numRelRet) Name() string {
	return "NumRelRet"
}

// Score uses the beta parameter to compute f-measure at the cutoff.
func (f FMeasure) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	precision := PrecisionAtK{K: f.K}.Score(results, qrels)
	recall := RecallAtK{K: f.K}.Score(results, qrels)
	if precision == 0 || recall == 0 {
		return 0
	}
	betaSquared := f.Beta * f.Beta
	return ((1 + betaSquared) * (precision * recall)) / ((betaSquared * precision) + recall)
}

// Name calculates the name of the f-measure with beta parameter.
func (f FMeasure) Name() string {
	if f.K > 0 {
		return fmt.Sprintf("F%vMeasure@%d", f.Beta, f.K)
	}
	return fmt.Sprintf("F%vMeasure", f.Beta)
}
