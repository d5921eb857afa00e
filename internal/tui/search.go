package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ludexhq/ludex/internal/api"
)

// searchDebounce is the quiet period after the last keystroke before a
// search request is issued.
const searchDebounce = 300 * time.Millisecond

// searchFunc issues the network search for a query, tagging the result with
// the query sequence so stale responses can be dropped.
type searchFunc func(query string, seq int) tea.Cmd

// SearchModel is the incremental search view. Every keystroke bumps a
// sequence number and schedules a debounce tick; only the tick that still
// matches the latest sequence fires a request, and only the response matching
// the latest issued request may touch the visible results.
type SearchModel struct {
	input  textinput.Model
	search searchFunc

	seq    int // latest input sequence
	issued int // sequence of the request we await
	busy   bool

	results []api.Game
	cursor  int
	notice  string
}

// NewSearchModel creates the search view
func NewSearchModel(search searchFunc) SearchModel {
	input := textinput.New()
	input.Placeholder = "Search games…"
	input.CharLimit = 120
	input.Focus()

	return SearchModel{
		input:  input,
		search: search,
	}
}

// Update handles search view messages
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		if m.input.Value() == before {
			return m, cmd
		}

		m.seq++
		if strings.TrimSpace(m.input.Value()) == "" {
			// Empty input never hits the network and clears what is shown.
			m.results = nil
			m.cursor = 0
			m.busy = false
			m.notice = ""
			return m, cmd
		}

		seq := m.seq
		return m, tea.Batch(cmd, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchDebounceMsg{seq: seq}
		}))

	case searchDebounceMsg:
		if msg.seq != m.seq {
			// A newer keystroke restarted the quiet period.
			return m, nil
		}
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		m.issued = msg.seq
		m.busy = true
		return m, m.search(query, msg.seq)

	case searchResultMsg:
		if msg.seq != m.issued {
			// A slow response to an old query must not overwrite newer results.
			return m, nil
		}
		m.busy = false
		m.cursor = 0
		if msg.err != nil {
			// Searches degrade to an empty result set with a notice.
			m.results = nil
			m.notice = "Search is unavailable right now."
			return m, nil
		}
		m.results = msg.games
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// Selected returns the result under the cursor
func (m SearchModel) Selected() (api.Game, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return api.Game{}, false
	}
	return m.results[m.cursor], true
}

// View renders the search view
func (m SearchModel) View(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(styles.Muted.Render("Searching…"))
	case m.notice != "":
		b.WriteString(styles.Error.Render(m.notice))
	case len(m.results) == 0 && strings.TrimSpace(m.input.Value()) != "":
		b.WriteString(styles.Muted.Render("No results."))
	default:
		for i, game := range m.results {
			row := fmt.Sprintf("%-40.40s %4.1f", game.Name, game.Rating)
			if i == m.cursor {
				b.WriteString(styles.Selected.Render("> " + row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
