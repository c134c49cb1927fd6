package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okaneko/slidemd/internal/deck"
	"github.com/okaneko/slidemd/internal/debug"
	"github.com/okaneko/slidemd/internal/ui"
)

// LoadInitialState reads and parses the presentation source. It runs
// before any terminal state is touched, so a failure needs no cleanup.
func LoadInitialState(target string) (ui.State, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return ui.State{}, err
	}

	info, err := os.Stat(absTarget)
	if err != nil {
		return ui.State{}, err
	}
	if info.IsDir() {
		return ui.State{}, fmt.Errorf("%s is a directory, not a markdown file", target)
	}

	data, err := os.ReadFile(absTarget)
	if err != nil {
		return ui.State{}, err
	}

	pres := deck.Parse(string(data))
	debug.Log("loaded %s: %d slides", absTarget, len(pres.Slides))

	return ui.State{
		Presentation: pres,
		SourcePath:   absTarget,
	}, nil
}
