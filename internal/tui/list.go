package tui

import (
	"fmt"
	"strings"

	"github.com/ludexhq/ludex/internal/api"
)

// gameList is the shared scrolling list used by the browse, favorites, and
// recommendation views. Pages append; entries already seen are dropped so
// overlapping server pages never show a duplicate ID.
type gameList struct {
	items  []api.Game
	seen   map[int64]bool
	cursor int

	page    int
	total   int
	loading bool
	done    bool
	notice  string
}

func newGameList() gameList {
	return gameList{seen: make(map[int64]bool)}
}

// addPage appends one page of results, de-duplicating by game ID
func (l *gameList) addPage(games []api.Game, total int) {
	for _, game := range games {
		if l.seen[game.ID] {
			continue
		}
		l.seen[game.ID] = true
		l.items = append(l.items, game)
	}
	l.total = total
	l.page++
	l.loading = false
	if total > 0 && len(l.items) >= total {
		l.done = true
	}
	if len(games) == 0 {
		l.done = true
	}
}

// remove drops a game from the list, keeping the cursor in range
func (l *gameList) remove(gameID int64) {
	for i, game := range l.items {
		if game.ID == gameID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			delete(l.seen, gameID)
			break
		}
	}
	if l.cursor >= len(l.items) && l.cursor > 0 {
		l.cursor--
	}
}

// reset clears the list for a fresh load
func (l *gameList) reset() {
	*l = newGameList()
}

func (l *gameList) moveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *gameList) moveDown() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// nearEnd reports whether the cursor is close enough to the end to load the
// next page.
func (l *gameList) nearEnd() bool {
	return !l.loading && !l.done && l.cursor >= len(l.items)-3
}

// selected returns the game under the cursor
func (l *gameList) selected() (api.Game, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return api.Game{}, false
	}
	return l.items[l.cursor], true
}

// render draws the list rows with the cursor highlighted. frame is the
// current spinner frame, shown while a page is loading.
func (l *gameList) render(styles Styles, height int, frame string) string {
	if len(l.items) == 0 {
		if l.loading {
			return frame + styles.Muted.Render(" Loading…")
		}
		if l.notice != "" {
			return styles.Error.Render(l.notice)
		}
		return styles.Muted.Render("Nothing here yet.")
	}

	top := 0
	if l.cursor >= height {
		top = l.cursor - height + 1
	}

	var b strings.Builder
	for i := top; i < len(l.items) && i < top+height; i++ {
		game := l.items[i]
		row := fmt.Sprintf("%-40.40s %4.1f  %s", game.Name, game.Rating, genreNames(game.Genres))
		if i == l.cursor {
			b.WriteString(styles.Selected.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	if l.loading {
		b.WriteString(frame + styles.Muted.Render(" Loading more…"))
		b.WriteString("\n")
	}
	if l.notice != "" {
		b.WriteString(styles.Error.Render(l.notice))
		b.WriteString("\n")
	}
	return b.String()
}

func genreNames(genres []api.Genre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}
