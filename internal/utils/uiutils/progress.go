package uiutils

import (
	"context"

	"github.com/HiDeoo/hideoo.dev/internal/utils/colors"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type progressDoneMsg struct {
	err error
}

// ProgressModel shows a spinner while work runs and a result line once it
// returned.
type ProgressModel struct {
	ctx     context.Context
	cancel  context.CancelFunc
	spinner spinner.Model
	title   string
	work    func(ctx context.Context) error

	done        bool
	interrupted bool
	err         error
}

func NewProgressModel(ctx context.Context, title string, work func(ctx context.Context) error) *ProgressModel {
	ctx, cancel := context.WithCancel(ctx)
	return &ProgressModel{
		ctx:     ctx,
		cancel:  cancel,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		title:   title,
		work:    work,
	}
}

func (m *ProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m *ProgressModel) run() tea.Msg {
	return progressDoneMsg{err: m.work(m.ctx)}
}

func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDoneMsg:
		m.done = true
		m.err = msg.err
		m.cancel()
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			m.cancel()
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ProgressModel) View() string {
	switch {
	case m.interrupted:
		return colors.FailureStyle.Render("✗ "+m.title+" (interrupted)") + "\n"
	case m.done && m.err != nil:
		return colors.FailureStyle.Render("✗ "+m.title) + "\n"
	case m.done:
		return colors.SuccessStyle.Render("✓ "+m.title) + "\n"
	}
	return colors.ProgressStyle.Render(m.spinner.View()+" "+m.title+"...") + "\n"
}

func (m *ProgressModel) ExitError() error {
	if m.interrupted {
		return ErrInterrupted
	}
	return m.err
}

// RunWithProgress runs work behind a spinner titled title. The context given
// to work is canceled when the user interrupts the program.
func RunWithProgress(ctx context.Context, title string, work func(ctx context.Context) error) error {
	return RunBubbleTea(NewProgressModel(ctx, title, work))
}
