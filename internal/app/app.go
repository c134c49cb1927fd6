package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okaneko/slidemd/internal/ui"
)

// Run executes the Bubble Tea program for the slideshow.
func Run(target string) error {
	state, err := LoadInitialState(target)
	if err != nil {
		return err
	}
	return runProgram(state)
}

func runProgram(state ui.State) error {
	program := tea.NewProgram(
		ui.NewModel(state),
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Quit on SIGINT/SIGTERM so the terminal is restored, with a kill
	// escalation when the program does not wind down in time.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		program.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		program.Kill()
	}()

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
