package controller

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/lit/internal/model"
)

const (
	progressPadding  = 2
	progressMaxWidth = 60
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	fileStyle  = lipgloss.NewStyle().Faint(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI draws a progress bar on stderr while files are scanned, then prints
// results through the embedded SimpleUI.
type TUI struct {
	*SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Start launches the progress program when there is work to show.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := t.SimpleUI.Start(ctx, options...); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.total == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	program := tea.NewProgram(
		newProgressModel(cfg.mode, cfg.total),
		tea.WithOutput(t.cmd.ErrOrStderr()),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("Progress display stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close stops the progress program and waits for it to clear the screen.
func (t *TUI) Close(ctx context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(doneMsg{})
	<-done

	t.SimpleUI.Close(ctx)
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program == nil {
		return false
	}

	t.program.Send(msg)

	return true
}

// DisplayState forwards the scan state to the progress bar.
func (t *TUI) DisplayState(ctx context.Context, state m.ScanState) {
	t.SimpleUI.DisplayState(ctx, state)
	t.send(stateMsg(state))
}

// DisplayProgress advances the progress bar.
func (t *TUI) DisplayProgress(_ context.Context, done, total int, source m.SourceFile) {
	t.send(progressMsg{done: done, total: total, file: source.DisplayPath()})
}

// DisplayWarning prints verbose warnings above the progress bar.
func (t *TUI) DisplayWarning(ctx context.Context, warning m.Warning) {
	t.SimpleUI.mu.Lock()
	verbose := t.SimpleUI.verbose
	t.SimpleUI.mu.Unlock()

	if !verbose {
		return
	}

	if !t.send(printMsg(FormatWarning(warning))) {
		t.SimpleUI.DisplayWarning(ctx, warning)
	}
}

type progressMsg struct {
	done  int
	total int
	file  string
}

type stateMsg m.ScanState

type printMsg string

type doneMsg struct{}

// progressModel is the Bubble Tea model behind the scan progress bar.
type progressModel struct {
	bar      progress.Model
	mode     StartMode
	done     int
	total    int
	file     string
	state    m.ScanState
	quitting bool
}

func newProgressModel(mode StartMode, total int) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressMaxWidth)),
		mode:  mode,
		total: total,
		state: m.StatePending,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return nil
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		pm.done = msg.done
		pm.total = msg.total
		pm.file = msg.file
		pm.state = m.StateScanning

		return pm, nil

	case stateMsg:
		pm.state = m.ScanState(msg)
		return pm, nil

	case printMsg:
		return pm, tea.Println(string(msg))

	case tea.WindowSizeMsg:
		pm.bar.Width = min(max(msg.Width-progressPadding*2-12, 10), progressMaxWidth)
		return pm, nil

	case doneMsg:
		pm.quitting = true
		return pm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.total <= 0 {
		return 0
	}

	return float64(pm.done) / float64(pm.total)
}

func (pm progressModel) View() string {
	if pm.quitting {
		return ""
	}

	pad := strings.Repeat(" ", progressPadding)

	var b strings.Builder

	b.WriteString(pad + titleStyle.Render("lit "+pm.mode.String()) + " " + pm.state.String() + "\n")
	b.WriteString(pad + pm.bar.ViewAs(pm.percent()) + " " + countStyle.Render(fmt.Sprintf("%d/%d", pm.done, pm.total)) + "\n")

	if pm.file != "" && pm.state == m.StateScanning {
		b.WriteString(pad + fileStyle.Render(filepath.ToSlash(pm.file)) + "\n")
	}

	return b.String()
}
