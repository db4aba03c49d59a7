package main

import (
	"context"
	"os"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/utils/uiutils"
	"github.com/mattn/go-isatty"
)

// withProgress runs work behind a spinner when stdout is a terminal. Debug
// logging disables the spinner so log lines are not redrawn over.
func withProgress(ctx context.Context, title string, work func(ctx context.Context) error) error {
	if rootFlags.Debug || !isatty.IsTerminal(os.Stdout.Fd()) {
		return work(ctx)
	}
	err := uiutils.RunWithProgress(ctx, title, work)
	if errors.Is(err, uiutils.ErrInterrupted) {
		return errExitSilently{ExitCode: 130}
	}
	return err
}
