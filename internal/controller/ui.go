// Package controller provides the user-facing output of the scanner: a plain
// writer for pipes and CI, and a Bubble Tea progress display for terminals.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/lit/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFind StartMode = iota
	ModeList
	ModeKeys
)

func (s StartMode) String() string {
	switch s {
	case ModeList:
		return "list"
	case ModeKeys:
		return "keys"
	default:
		return "find"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode    StartMode
	total   int
	verbose bool
}

// WithFindMode sets the UI to missing-key mode.
func WithFindMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFind
	}
}

// WithListMode sets the UI to file listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithKeysMode sets the UI to key listing mode.
func WithKeysMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeKeys
	}
}

// WithTotal sets the number of files the scan will process.
func WithTotal(total int) StartOption {
	return func(c *StartConfig) {
		c.total = total
	}
}

// WithVerbose enables warnings for call sites whose key is dynamic.
func WithVerbose(verbose bool) StartOption {
	return func(c *StartConfig) {
		c.verbose = verbose
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how scan progress and results are shown.
// Implementations must be safe for concurrent use by scan workers.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayState(ctx context.Context, state m.ScanState)
	DisplayProgress(ctx context.Context, done, total int, source m.SourceFile)
	DisplayWarning(ctx context.Context, warning m.Warning)
	DisplayMissingKeys(ctx context.Context, keys []string) error
	DisplayFileSummary(ctx context.Context, results []m.FileResult) error
	DisplayKeyReferences(ctx context.Context, keys []string, refs map[string][]m.Location) error
}

// NewUI returns the TUI when progress can be drawn on a terminal and the
// plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
