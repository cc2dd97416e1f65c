package retrieval

import (
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// Deduplicator removes duplicate documents from a result list, keeping the
// highest-ranked occurrence of each document.
type Deduplicator struct{}

// Truncator caps a result list at a fixed depth.
type Truncator struct {
	Depth int
}

func (Deduplicator) Handle(list *trecresults.ResultList) error {
	seen := make(map[string]bool, list.Len())
	deduped := make(trecresults.ResultList, 0, list.Len())
	for _, result := range *list {
		if seen[result.DocId] {
			continue
		}
		seen[result.DocId] = true
		deduped = append(deduped, result)
	}
	*list = deduped
	return nil
}

func (t Truncator) Handle(list *trecresults.ResultList) error {
	if t.Depth <= 0 {
		return errors.Errorf("truncation depth %d must be positive", t.Depth)
	}
	if list.Len() > t.Depth {
		*list = (*list)[:t.Depth]
	}
	return nil
}

// NewDeduplicator creates a new handler which de-duplicates result lists.
func NewDeduplicator() Deduplicator {
	return Deduplicator{}
}
