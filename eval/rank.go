package eval

import (
	"fmt"
	"math"
	"sort"

	"github.com/hscells/trecresults"
)

// ReciprocalRank scores a result list by the reciprocal of the rank of the
// first relevant document within the cutoff, or 0 when there is none.
// For k1 <= k2, the score at k2 is never smaller than the score at k1.
type ReciprocalRank struct {
	K int
}

// AveragePrecision computes average precision within the cutoff: the mean of
// the precision values at every rank where a relevant document appears. A
// topic with no relevant document inside the cutoff scores 0.
type AveragePrecision struct {
	K int
}

// DCG computes discounted cumulative gain at a cutoff using the gain model
// 2^rel - 1 over binary relevance.
type DCG struct {
	K int
}

// NDCG computes DCG normalized by the DCG of the best possible ordering of
// the same relevance sequence. A topic with no relevant documents inside the
// cutoff scores 0.
type NDCG struct {
	K int
}

func (e ReciprocalRank) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	for i, result := range *results {
		if e.K > 0 && i >= e.K {
			break
		}
		if relevant(qrels, result.DocId) {
			return 1.0 / float64(i+1)
		}
	}
	return 0.0
}

func (e ReciprocalRank) Name() string {
	if e.K > 0 {
		return fmt.Sprintf("RR@%d", e.K)
	}
	return "RR"
}

func (e AveragePrecision) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	var found, precs float64
	for i, rel := range Relevances(results, qrels, e.K) {
		if rel > 0 {
			found++
			precs += found / float64(i+1)
		}
	}
	if found == 0 {
		return 0.0
	}
	return precs / found
}

func (e AveragePrecision) Name() string {
	if e.K > 0 {
		return fmt.Sprintf("AP@%d", e.K)
	}
	return "AP"
}

// dcg accumulates discounted gains over a relevance sequence. Rank i
// (1-indexed) is discounted by log2(i+1).
func dcg(rels []float64) float64 {
	var score float64
	for i, rel := range rels {
		score += (math.Pow(2, rel) - 1) / math.Log2(float64(i)+2)
	}
	return score
}

func (e DCG) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	return dcg(Relevances(results, qrels, e.K))
}

func (e DCG) Name() string {
	if e.K > 0 {
		return fmt.Sprintf("DCG@%d", e.K)
	}
	return "DCG"
}

func (e NDCG) Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64 {
	rels := Relevances(results, qrels, e.K)

	// Compute ideal discounted cumulative gain from the best achievable
	// ordering of the same relevance values.
	ideal := make([]float64, len(rels))
	copy(ideal, rels)
	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))

	idcg := dcg(ideal)
	if idcg == 0 {
		return 0.0
	}
	return dcg(rels) / idcg
}

func (e NDCG) Name() string {
	if e.K > 0 {
		return fmt.Sprintf("nDCG@%d", e.K)
	}
	return "nDCG"
}
