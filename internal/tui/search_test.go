package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ludexhq/ludex/internal/api"
	"github.com/ludexhq/ludex/internal/errors"
)

type searchRecorder struct {
	queries []string
	seqs    []int
}

func (r *searchRecorder) search(query string, seq int) tea.Cmd {
	r.queries = append(r.queries, query)
	r.seqs = append(r.seqs, seq)
	return nil
}

func typeText(m SearchModel, text string) SearchModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSearchTypingIssuesOneRequest(t *testing.T) {
	rec := &searchRecorder{}
	m := NewSearchModel(rec.search)

	m = typeText(m, "zelda")

	// Each keystroke scheduled a tick; only the last one still matches.
	for seq := 1; seq <= 5; seq++ {
		m, _ = m.Update(searchDebounceMsg{seq: seq})
	}

	if len(rec.queries) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(rec.queries))
	}
	if rec.queries[0] != "zelda" {
		t.Errorf("expected query %q, got %q", "zelda", rec.queries[0])
	}
	if rec.seqs[0] != 5 {
		t.Errorf("expected request for seq 5, got %d", rec.seqs[0])
	}
}

func TestSearchBlankInputSkipsNetwork(t *testing.T) {
	rec := &searchRecorder{}
	m := NewSearchModel(rec.search)

	m = typeText(m, "a")
	m.results = []api.Game{{ID: 1, Name: "Hades"}}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if len(m.results) != 0 {
		t.Errorf("expected results cleared on blank input, got %d", len(m.results))
	}

	// The debounce for the blank value must not issue a request.
	m, _ = m.Update(searchDebounceMsg{seq: m.seq})
	if len(rec.queries) != 0 {
		t.Errorf("expected no requests for blank input, got %d", len(rec.queries))
	}
}

func TestSearchStaleResponseDropped(t *testing.T) {
	rec := &searchRecorder{}
	m := NewSearchModel(rec.search)

	m = typeText(m, "doom")
	m, _ = m.Update(searchDebounceMsg{seq: m.seq})
	first := m.issued

	m = typeText(m, " eternal")
	m, _ = m.Update(searchDebounceMsg{seq: m.seq})

	// The slow response to the first query arrives after the second request.
	m, _ = m.Update(searchResultMsg{seq: first, games: []api.Game{{ID: 1, Name: "Doom"}}})
	if len(m.results) != 0 {
		t.Errorf("stale response must not populate results, got %d", len(m.results))
	}

	m, _ = m.Update(searchResultMsg{seq: m.issued, games: []api.Game{{ID: 2, Name: "Doom Eternal"}}})
	if len(m.results) != 1 || m.results[0].Name != "Doom Eternal" {
		t.Errorf("expected the current response to apply, got %v", m.results)
	}
}

func TestSearchErrorShowsEmptyResults(t *testing.T) {
	rec := &searchRecorder{}
	m := NewSearchModel(rec.search)

	m = typeText(m, "mario")
	m, _ = m.Update(searchDebounceMsg{seq: m.seq})
	m, _ = m.Update(searchResultMsg{seq: m.issued, err: errors.NewServerError(500)})

	if len(m.results) != 0 {
		t.Errorf("expected empty results on error, got %d", len(m.results))
	}
	if m.notice == "" {
		t.Error("expected a user-facing notice on error")
	}
	if m.busy {
		t.Error("expected busy flag cleared")
	}
}
