package uiutils

import (
	"context"
	"testing"

	"emperror.dev/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runModel(t *testing.T, m *ProgressModel) tea.Cmd {
	t.Helper()
	require.NotNil(t, m.Init())
	_, cmd := m.Update(m.run())
	return cmd
}

func TestProgressModelSuccess(t *testing.T) {
	calls := 0
	m := NewProgressModel(context.Background(), "Building site", func(ctx context.Context) error {
		calls++
		return nil
	})
	require.Contains(t, m.View(), "Building site...")

	cmd := runModel(t, m)
	require.Equal(t, 1, calls)
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.Contains(t, m.View(), "✓ Building site")
	require.NoError(t, m.ExitError())
}

func TestProgressModelFailure(t *testing.T) {
	boom := errors.New("boom")
	m := NewProgressModel(context.Background(), "Building site", func(ctx context.Context) error {
		return boom
	})

	runModel(t, m)
	require.Contains(t, m.View(), "✗ Building site")
	require.ErrorIs(t, m.ExitError(), boom)
}

func TestProgressModelInterrupt(t *testing.T) {
	var workCtx context.Context
	m := NewProgressModel(context.Background(), "Fetching repositories", func(ctx context.Context) error {
		workCtx = ctx
		return nil
	})
	m.Init()
	_ = m.run()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.ErrorIs(t, workCtx.Err(), context.Canceled, "work context should be canceled")
	require.ErrorIs(t, m.ExitError(), ErrInterrupted)
	require.Contains(t, m.View(), "(interrupted)")
}

func TestProgressModelIgnoresOtherKeys(t *testing.T) {
	m := NewProgressModel(context.Background(), "Building site", func(ctx context.Context) error { return nil })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.Nil(t, cmd)
	require.NoError(t, m.ExitError())
	require.Contains(t, m.View(), "Building site...")
}
