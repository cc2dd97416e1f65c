// Package rankeval scores batches of ranked retrieval results against
// relevance judgments at fixed rank cutoffs.
package rankeval

import (
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
	"github.com/trectools/rankeval/eval"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidCutoff indicates a rank cutoff that is not a positive integer.
var ErrInvalidCutoff = errors.New("cutoff must be a positive integer")

// Measure constructs a cutoff-parameterised evaluator.
type Measure func(k int) eval.Evaluator

var (
	// RecallMeasure constructs recall at a cutoff.
	RecallMeasure Measure = func(k int) eval.Evaluator { return eval.RecallAtK{K: k} }
	// PrecisionMeasure constructs precision at a cutoff.
	PrecisionMeasure Measure = func(k int) eval.Evaluator { return eval.PrecisionAtK{K: k} }
	// ReciprocalRankMeasure constructs reciprocal rank at a cutoff.
	ReciprocalRankMeasure Measure = func(k int) eval.Evaluator { return eval.ReciprocalRank{K: k} }
	// AveragePrecisionMeasure constructs average precision at a cutoff.
	AveragePrecisionMeasure Measure = func(k int) eval.Evaluator { return eval.AveragePrecision{K: k} }
	// NDCGMeasure constructs nDCG at a cutoff.
	NDCGMeasure Measure = func(k int) eval.Evaluator { return eval.NDCG{K: k} }
)

// ValidateCutoffs ensures cutoffs are explicitly supplied and all positive.
func ValidateCutoffs(cutoffs []int) error {
	if len(cutoffs) == 0 {
		return errors.Wrap(ErrInvalidCutoff, "no cutoffs supplied")
	}
	for _, k := range cutoffs {
		if k <= 0 {
			return errors.Wrapf(ErrInvalidCutoff, "cutoff %d", k)
		}
	}
	return nil
}

// MeanAt computes the mean score of a measure over every topic in a run, for
// each cutoff independently. Topics in the run with no judgments contribute a
// score of 0.
func MeanAt(measure Measure, run trecresults.ResultFile, qrels trecresults.QrelsFile, cutoffs []int) (map[int]float64, error) {
	if err := ValidateCutoffs(cutoffs); err != nil {
		return nil, err
	}
	means := make(map[int]float64, len(cutoffs))
	for _, k := range cutoffs {
		evaluator := measure(k)
		scores := make([]float64, 0, len(run.Results))
		for topic, list := range run.Results {
			l := list
			scores = append(scores, evaluator.Score(&l, qrels.Qrels[topic]))
		}
		if len(scores) == 0 {
			means[k] = 0.0
			continue
		}
		means[k] = stat.Mean(scores, nil)
	}
	return means, nil
}

// RecallAt computes mean recall over a run at each cutoff.
func RecallAt(run trecresults.ResultFile, qrels trecresults.QrelsFile, cutoffs []int) (map[int]float64, error) {
	return MeanAt(RecallMeasure, run, qrels, cutoffs)
}

// PrecisionAt computes mean precision over a run at each cutoff.
func PrecisionAt(run trecresults.ResultFile, qrels trecresults.QrelsFile, cutoffs []int) (map[int]float64, error) {
	return MeanAt(PrecisionMeasure, run, qrels, cutoffs)
}

// MRRAt computes mean reciprocal rank over a run at each cutoff.
func MRRAt(run trecresults.ResultFile, qrels trecresults.QrelsFile, cutoffs []int) (map[int]float64, error) {
	return MeanAt(ReciprocalRankMeasure, run, qrels, cutoffs)
}

// MAPAt computes mean average precision over a run at each cutoff.
func MAPAt(run trecresults.ResultFile, qrels trecresults.QrelsFile, cutoffs []int) (map[int]float64, error) {
	return MeanAt(AveragePrecisionMeasure, run, qrels, cutoffs)
}

// NDCGAt computes mean nDCG over a run at each cutoff.
func NDCGAt(run trecresults.ResultFile, qrels trecresults.QrelsFile, cutoffs []int) (map[int]float64, error) {
	return MeanAt(NDCGMeasure, run, qrels, cutoffs)
}

// Evaluate scores every topic in a run using the supplied evaluation
// measurements.
func Evaluate(evaluators []eval.Evaluator, run trecresults.ResultFile, qrels trecresults.QrelsFile) map[string]map[string]float64 {
	evaluation := make(map[string]map[string]float64, len(run.Results))
	for topic, list := range run.Results {
		l := list
		evaluation[topic] = make(map[string]float64, len(evaluators))
		for _, evaluator := range evaluators {
			evaluation[topic][evaluator.Name()] = evaluator.Score(&l, qrels.Qrels[topic])
		}
	}
	return evaluation
}

// Mean collapses a per-topic evaluation into the mean score of each measure.
func Mean(evaluation map[string]map[string]float64) map[string]float64 {
	perMeasure := make(map[string][]float64)
	for _, scores := range evaluation {
		for measure, value := range scores {
			perMeasure[measure] = append(perMeasure[measure], value)
		}
	}
	means := make(map[string]float64, len(perMeasure))
	for measure, values := range perMeasure {
		means[measure] = stat.Mean(values, nil)
	}
	return means
}
