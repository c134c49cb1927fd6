package ui

import "github.com/okaneko/slidemd/internal/deck"

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Presentation deck.Presentation
	SourcePath   string
}
