package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/sahilm/fuzzy"

	"github.com/laststance/gitbox-sub002/internal/models"
)

// filterCards fuzzy-matches the query against card titles and repository
// names, returning matches ranked best first.
func filterCards(cards []*models.Card, query string) []*models.Card {
	targets := make([]string, len(cards))
	for i, c := range cards {
		targets[i] = c.Title + " " + c.RepoFullName
	}
	matches := fuzzy.Find(query, targets)
	out := make([]*models.Card, 0, len(matches))
	for _, match := range matches {
		out = append(out, cards[match.Index])
	}
	return out
}

// repoReference extracts an "owner/name" repository reference from free
// input, or "" when the input is a plain title.
func repoReference(value string) string {
	if strings.Count(value, "/") != 1 || strings.ContainsAny(value, " \t") {
		return ""
	}
	return value
}

// renderCardDetail renders a card's detail pane as terminal markdown.
func renderCardDetail(card *models.Card, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", card.Title)
	if card.RepoFullName != "" {
		fmt.Fprintf(&b, "**Repository:** [%s](%s)\n\n", card.RepoFullName, card.RepoURL)
	}
	if card.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", card.Description)
	}
	if card.Language != "" || card.Stars > 0 {
		fmt.Fprintf(&b, "`%s` · %d stars\n\n", card.Language, card.Stars)
	}
	if card.Notes != "" {
		fmt.Fprintf(&b, "## Notes\n\n%s\n", card.Notes)
	}
	md := b.String()

	wrap := width - 4
	if wrap < 40 {
		wrap = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
