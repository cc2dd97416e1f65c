// Package output provides different formats of output for evaluation results.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// EvaluationFormatter is used to output per-topic evaluation results.
type EvaluationFormatter func(map[string]map[string]float64) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// TextEvaluationFormatter outputs one "topic measure: score" line per value,
// sorted by topic then measure.
func TextEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	topics := make([]string, 0, len(results))
	for topic := range results {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	var b strings.Builder
	for _, topic := range topics {
		measures := make([]string, 0, len(results[topic]))
		for measure := range results[topic] {
			measures = append(measures, measure)
		}
		sort.Strings(measures)
		for _, measure := range measures {
			fmt.Fprintf(&b, "%s %s: %v\n", topic, measure, results[topic][measure])
		}
	}
	return b.String(), nil
}

// MeansFormatter outputs one "measure: score" line per mean, sorted by
// measure.
func MeansFormatter(means map[string]float64) (string, error) {
	measures := make([]string, 0, len(means))
	for measure := range means {
		measures = append(measures, measure)
	}
	sort.Strings(measures)

	var b strings.Builder
	for _, measure := range measures {
		fmt.Fprintf(&b, "%s: %v\n", measure, means[measure])
	}
	return b.String(), nil
}
