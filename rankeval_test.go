package rankeval_test

import (
	"strconv"
	"testing"

	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trectools/rankeval"
	"github.com/trectools/rankeval/eval"
)

// fixture builds a three-topic batch over a toy corpus of documents 0-30.
func fixture() (trecresults.ResultFile, trecresults.QrelsFile) {
	relevant := [][]int{
		{11, 1, 7, 17, 21},
		{4, 16, 1},
		{26, 10, 22, 8},
	}
	ranked := [][]int{
		{11, 1, 17, 7, 21, 8, 0, 28, 9, 20},
		{16, 1, 6, 18, 3, 4, 25, 19, 8, 14},
		{24, 10, 26, 2, 8, 28, 4, 23, 13, 21},
	}

	run := trecresults.ResultFile{Results: make(map[string]trecresults.ResultList)}
	qrels := trecresults.QrelsFile{Qrels: make(map[string]trecresults.Qrels)}
	for i := range ranked {
		topic := strconv.Itoa(i + 1)
		list := make(trecresults.ResultList, len(ranked[i]))
		for j, id := range ranked[i] {
			list[j] = &trecresults.Result{
				Topic: topic,
				DocId: strconv.Itoa(id),
				Rank:  int64(j + 1),
			}
		}
		run.Results[topic] = list

		qrels.Qrels[topic] = make(trecresults.Qrels, len(relevant[i]))
		for _, id := range relevant[i] {
			docID := strconv.Itoa(id)
			qrels.Qrels[topic][docID] = &trecresults.Qrel{
				Topic:     topic,
				Iteration: "0",
				DocId:     docID,
				Score:     1,
			}
		}
	}
	return run, qrels
}

func TestBatchMetricsOnFixture(t *testing.T) {
	run, qrels := fixture()
	cutoffs := []int{1, 5, 10}

	for _, tc := range []struct {
		name     string
		at       func(trecresults.ResultFile, trecresults.QrelsFile, []int) (map[int]float64, error)
		expected map[int]float64
	}{
		{"recall", rankeval.RecallAt, map[int]float64{1: 0.666666667, 5: 0.805555556, 10: 0.916666667}},
		{"precision", rankeval.PrecisionAt, map[int]float64{1: 0.666666667, 5: 0.666666667, 10: 0.366666667}},
		{"mrr", rankeval.MRRAt, map[int]float64{1: 0.666666667, 5: 0.833333333, 10: 0.833333333}},
		{"map", rankeval.MAPAt, map[int]float64{1: 0.666666667, 5: 0.862962963, 10: 0.807407407}},
		{"ndcg", rankeval.NDCGAt, map[int]float64{1: 0.666666667, 5: 0.904087689, 10: 0.881594720}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := tc.at(run, qrels, cutoffs)
			require.NoError(t, err)
			require.Len(t, scores, len(cutoffs))
			for k, expected := range tc.expected {
				assert.InDelta(t, expected, scores[k], 1e-6, "k=%d", k)
			}
		})
	}
}

func TestPerTopicNDCGOnFixture(t *testing.T) {
	run, qrels := fixture()

	three := run.Results["3"]
	assert.InDelta(t, 0.712263066, eval.NDCG{K: 5}.Score(&three, qrels.Qrels["3"]), 1e-6)

	two := run.Results["2"]
	assert.InDelta(t, 0.932521092, eval.NDCG{K: 10}.Score(&two, qrels.Qrels["2"]), 1e-6)
}

func TestInvalidCutoffs(t *testing.T) {
	run, qrels := fixture()

	for _, cutoffs := range [][]int{nil, {}, {0}, {-1}, {5, 0, 10}} {
		_, err := rankeval.RecallAt(run, qrels, cutoffs)
		require.Error(t, err, "%v", cutoffs)
		assert.True(t, errors.Is(err, rankeval.ErrInvalidCutoff), "%v", cutoffs)
	}
}

func TestEmptyQrelsTopicScoresZero(t *testing.T) {
	run, _ := fixture()
	empty := trecresults.QrelsFile{Qrels: make(map[string]trecresults.Qrels)}

	for _, at := range []func(trecresults.ResultFile, trecresults.QrelsFile, []int) (map[int]float64, error){
		rankeval.RecallAt, rankeval.PrecisionAt, rankeval.MRRAt, rankeval.MAPAt, rankeval.NDCGAt,
	} {
		scores, err := at(run, empty, []int{1, 5, 10})
		require.NoError(t, err)
		for k, score := range scores {
			assert.Equal(t, 0.0, score, "k=%d", k)
		}
	}
}

func TestEmptyRun(t *testing.T) {
	_, qrels := fixture()
	run := trecresults.ResultFile{Results: make(map[string]trecresults.ResultList)}

	scores, err := rankeval.NDCGAt(run, qrels, []int{5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, scores[5])
}

func TestEvaluateAndMean(t *testing.T) {
	run, qrels := fixture()
	evaluators := []eval.Evaluator{
		eval.RecallAtK{K: 5},
		eval.ReciprocalRank{K: 5},
		eval.NumRel,
	}

	evaluation := rankeval.Evaluate(evaluators, run, qrels)
	require.Len(t, evaluation, 3)
	assert.InDelta(t, 1.0, evaluation["1"]["Recall@5"], 1e-9)
	assert.InDelta(t, 2.0/3.0, evaluation["2"]["Recall@5"], 1e-9)
	assert.Equal(t, 4.0, evaluation["3"]["NumRel"])

	means := rankeval.Mean(evaluation)
	assert.InDelta(t, 0.805555556, means["Recall@5"], 1e-6)
	assert.InDelta(t, 0.833333333, means["RR@5"], 1e-6)
	assert.InDelta(t, 4.0, means["NumRel"], 1e-9)
}
