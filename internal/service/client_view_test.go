package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azgeda96/secure-pass-vault/models"
)

func sampleRecords() []models.Credential {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Credential{
		{ID: "1", Machine: "Debian-network", Service: "Portainer", Person: "Élise", Username: "admin", IPAddress: "192.168.1.10", Status: models.StatusLocal, CreatedAt: base},
		{ID: "2", Machine: "alpha-web", Service: "nginx", Person: "bob", Username: "www", IPAddress: "10.0.0.2", Status: models.StatusOnline, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "3", Machine: "Backup-NAS", Service: "ssh", Username: "root", IPAddress: "10.0.0.3", Status: models.StatusOffline, CreatedAt: base.Add(time.Hour)},
		{ID: "4", Machine: "zeta-db", Service: "postgres", Person: "Alice", IPAddress: "10.0.0.4", Status: models.StatusOnline, CreatedAt: base.Add(3 * time.Hour)},
	}
}

// TestBuildListView_IdentityFilters verifies that empty search plus the "all"
// status filter drops nothing: the result is a permutation of the input.
func TestBuildListView_IdentityFilters(t *testing.T) {
	records := sampleRecords()

	for _, key := range []SortKey{SortByMachine, SortByService, SortByPerson, SortByRecent} {
		got := BuildListView(records, ListQuery{Status: StatusFilterAll, Sort: key})

		require.Len(t, got, len(records), "sort key %s", key)
		seen := map[string]bool{}
		for _, r := range got {
			seen[r.ID] = true
		}
		assert.Len(t, seen, len(records), "sort key %s", key)
	}
}

func TestBuildListView_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()

	BuildListView(records, ListQuery{Sort: SortByRecent})

	assert.Equal(t, sampleRecords(), records)
}

func TestBuildListView_SearchMatchesAnyField(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"machine substring, case-insensitive", "debian", []string{"1"}},
		{"service", "nginx", []string{"2"}},
		{"person", "alice", []string{"4"}},
		{"username", "root", []string{"3"}},
		{"ip address", "10.0.0", []string{"2", "3", "4"}},
		{"no match", "nothing-here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildListView(records, ListQuery{Search: tt.search, Status: StatusFilterAll, Sort: SortByMachine})

			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

// TestBuildListView_SearchAbsentFieldsDoNotMatch verifies that a record with
// no person is simply not matched through the person field, rather than
// matching everything or panicking.
func TestBuildListView_SearchAbsentFieldsDoNotMatch(t *testing.T) {
	records := []models.Credential{{ID: "1", Machine: "alpha", Service: "ssh"}}

	got := BuildListView(records, ListQuery{Search: "bob", Status: StatusFilterAll, Sort: SortByMachine})

	assert.Empty(t, got)
}

func TestBuildListView_StatusFilterExactMatch(t *testing.T) {
	records := sampleRecords()

	got := BuildListView(records, ListQuery{Status: models.StatusOnline, Sort: SortByMachine})

	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, models.StatusOnline, r.Status)
	}
}

func TestBuildListView_SearchAndStatusCompose(t *testing.T) {
	records := sampleRecords()

	got := BuildListView(records, ListQuery{Search: "10.0.0", Status: models.StatusOnline, Sort: SortByMachine})

	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestBuildListView_SortByMachineIsDefault(t *testing.T) {
	records := sampleRecords()

	got := BuildListView(records, ListQuery{Status: StatusFilterAll})

	require.Len(t, got, 4)
	// French collation orders case-insensitively at the primary level:
	// alpha-web < Backup-NAS < Debian-network < zeta-db.
	assert.Equal(t, []string{"2", "3", "1", "4"}, []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

// TestBuildListView_SortByPersonEmptyFirst verifies records without a person
// sort ahead of everything else.
func TestBuildListView_SortByPersonEmptyFirst(t *testing.T) {
	records := sampleRecords()

	got := BuildListView(records, ListQuery{Status: StatusFilterAll, Sort: SortByPerson})

	require.Len(t, got, 4)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "Alice", got[1].Person)
	assert.Equal(t, "bob", got[2].Person)
	assert.Equal(t, "Élise", got[3].Person)
}

func TestBuildListView_SortByRecentNewestFirst(t *testing.T) {
	records := sampleRecords()

	got := BuildListView(records, ListQuery{Status: StatusFilterAll, Sort: SortByRecent})

	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
	}
	assert.Equal(t, "4", got[0].ID)
}

// TestBuildListView_TieBrokenByID pins the deterministic secondary key:
// records with equal sort values come out ordered by id.
func TestBuildListView_TieBrokenByID(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.Credential{
		{ID: "b", Machine: "same", Service: "same", CreatedAt: when},
		{ID: "a", Machine: "same", Service: "same", CreatedAt: when},
		{ID: "c", Machine: "same", Service: "same", CreatedAt: when},
	}

	for _, key := range []SortKey{SortByMachine, SortByService, SortByPerson, SortByRecent} {
		got := BuildListView(records, ListQuery{Status: StatusFilterAll, Sort: key})

		require.Len(t, got, 3, "sort key %s", key)
		assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID}, "sort key %s", key)
	}
}
