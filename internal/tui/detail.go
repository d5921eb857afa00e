package tui

import (
	"fmt"
	"strings"

	"github.com/ludexhq/ludex/internal/api"
)

// DetailModel is the game detail view
type DetailModel struct {
	game     *api.GameDetails
	favorite bool
	loading  bool
	notice   string
}

// setGame installs a loaded detail page
func (m *DetailModel) setGame(game *api.GameDetails, favorite bool) {
	m.game = game
	m.favorite = favorite
	m.loading = false
	m.notice = ""
}

// View renders the detail view
func (m DetailModel) View(styles Styles) string {
	if m.loading {
		return styles.Muted.Render("Loading…")
	}
	if m.game == nil {
		if m.notice != "" {
			return styles.Error.Render(m.notice)
		}
		return styles.Muted.Render("No game selected.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(m.game.Name))
	b.WriteString("\n")

	meta := fmt.Sprintf("Released %s · Rating %.1f", m.game.Released, m.game.Rating)
	if m.game.Price > 0 {
		meta += fmt.Sprintf(" · %.2f EUR", m.game.Price)
	}
	b.WriteString(styles.Subtitle.Render(meta))
	b.WriteString("\n")

	if len(m.game.Genres) > 0 {
		b.WriteString(styles.Muted.Render("Genres: " + genreNames(m.game.Genres)))
		b.WriteString("\n")
	}
	if len(m.game.Platforms) > 0 {
		names := make([]string, 0, len(m.game.Platforms))
		for _, p := range m.game.Platforms {
			names = append(names, p.Platform.Name)
		}
		b.WriteString(styles.Muted.Render("Platforms: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.game.Description != "" {
		b.WriteString(m.game.Description)
		b.WriteString("\n\n")
	}

	if m.favorite {
		b.WriteString(styles.Success.Render("★ In your favorites"))
	} else {
		b.WriteString(styles.Muted.Render("☆ Not in your favorites"))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(styles.Error.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(styles.Help.Render("f toggle favorite · esc back"))
	return b.String()
}
