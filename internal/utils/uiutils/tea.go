package uiutils

import (
	"os"

	"emperror.dev/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned when the user stops a running program.
const ErrInterrupted = errors.Sentinel("interrupted")

type BubbleTeaModelWithExitHandling interface {
	// ExitError is called after the program finished running (tea.Quit).
	//
	// This is used as a return value of RunBubbleTea.
	ExitError() error

	tea.Model
}

func RunBubbleTea(model BubbleTeaModelWithExitHandling) error {
	var opts []tea.ProgramOption
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		opts = []tea.ProgramOption{
			tea.WithInput(nil),
		}
	}
	p := tea.NewProgram(model, opts...)
	finalModel, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "failed to run terminal program")
	}
	return finalModel.(BubbleTeaModelWithExitHandling).ExitError()
}
