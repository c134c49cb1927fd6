package ui

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/mattn/go-runewidth"
)

// titleBanner renders the presentation title as FIGlet art. It falls back
// to the plain title text when the art comes out empty (non-ASCII titles
// have no glyphs in the standard font) or wider than maxWidth.
func titleBanner(title string, maxWidth int) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}

	art := strings.TrimRight(figure.NewFigure(title, "standard", false).String(), "\n")
	if strings.TrimSpace(art) == "" {
		return title
	}
	for _, line := range strings.Split(art, "\n") {
		if runewidth.StringWidth(line) > maxWidth {
			return title
		}
	}
	return art
}
