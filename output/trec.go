package output

import (
	"os"
	"strings"

	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// TrecResults represents the output format for trec results.
type TrecResults struct {
	Path    string
	Results trecresults.ResultList
}

// Write writes the result list to the path in trec run format.
func (t TrecResults) Write() error {
	lines := make([]string, len(t.Results))
	for i, result := range t.Results {
		lines[i] = result.String()
	}
	err := os.WriteFile(t.Path, []byte(strings.Join(lines, "\n")+"\n"), 0664)
	if err != nil {
		return errors.Wrapf(err, "writing run to %s", t.Path)
	}
	return nil
}
