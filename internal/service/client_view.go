package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/azgeda96/secure-pass-vault/models"
)

// SortKey selects the ordering of the credential list.
type SortKey string

const (
	// SortByMachine orders by machine name ascending. The default.
	SortByMachine SortKey = "machine"
	// SortByService orders by service name ascending.
	SortByService SortKey = "service"
	// SortByPerson orders by person ascending; records without a person
	// sort first.
	SortByPerson SortKey = "person"
	// SortByRecent orders by creation time, most recent first.
	SortByRecent SortKey = "recent"
)

// StatusFilterAll passes every record through the status filter.
const StatusFilterAll = "all"

// ListQuery bundles the three list controls: free-text search, status
// filter, and sort key.
type ListQuery struct {
	Search string
	Status string
	Sort   SortKey
}

// BuildListView derives the display sequence from the raw record set. It is
// a pure function: records is never mutated, and the same inputs always
// yield the same output.
//
// Search matches case-insensitively against machine, service, person,
// username, and IP address; a record passes when the term appears in any of
// them. The status filter then keeps records whose status equals it exactly
// (StatusFilterAll keeps everything). The filtered result is sorted with
// French collation, ties broken by id so the order is deterministic.
func BuildListView(records []models.Credential, query ListQuery) []models.Credential {
	filtered := make([]models.Credential, 0, len(records))

	term := strings.ToLower(strings.TrimSpace(query.Search))
	for _, record := range records {
		if term != "" && !matchesSearch(record, term) {
			continue
		}
		if query.Status != "" && query.Status != StatusFilterAll && record.Status != query.Status {
			continue
		}
		filtered = append(filtered, record)
	}

	sortRecords(filtered, query.Sort)
	return filtered
}

func matchesSearch(record models.Credential, term string) bool {
	for _, field := range []string{record.Machine, record.Service, record.Person, record.Username, record.IPAddress} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func sortRecords(records []models.Credential, key SortKey) {
	collator := collate.New(language.French)

	compare := func(a, b models.Credential) int {
		switch key {
		case SortByService:
			return collator.CompareString(a.Service, b.Service)
		case SortByPerson:
			return collator.CompareString(a.Person, b.Person)
		case SortByRecent:
			switch {
			case a.CreatedAt.After(b.CreatedAt):
				return -1
			case a.CreatedAt.Before(b.CreatedAt):
				return 1
			default:
				return 0
			}
		default:
			return collator.CompareString(a.Machine, b.Machine)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if cmp := compare(records[i], records[j]); cmp != 0 {
			return cmp < 0
		}
		return records[i].ID < records[j].ID
	})
}
