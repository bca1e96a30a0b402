package ui

import (
	"context"
	stderrors "errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/teelog/internal/errors"
	"github.com/tungetti/teelog/internal/viewer"
)

// RunOptions configures Run.
type RunOptions struct {
	Options
	// Input and Output default to the process terminal.
	Input  io.Reader
	Output io.Writer
}

// Run loads the file at opts.Path and shows it until the user quits or ctx
// is done. With Follow set, lines appended to the file are streamed in.
func Run(ctx context.Context, opts RunOptions) error {
	lines, offset, err := viewer.TailOffset(opts.Path, 0)
	if err != nil {
		return err
	}
	opts.Lines = lines

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var followErr chan error
	if opts.Follow && opts.Updates == nil {
		followErr = make(chan error, 1)
		updates := make(chan string, 64)
		opts.Updates = updates
		go func() {
			defer close(updates)
			followErr <- viewer.FollowWith(ctx, opts.Path, updates, viewer.FollowOptions{Offset: offset})
		}()
	}

	model := NewWithContext(ctx, opts.Options)

	var progOpts []tea.ProgramOption
	progOpts = append(progOpts, tea.WithAltScreen())
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	program := tea.NewProgram(model, progOpts...)

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return errors.Wrap(errors.Terminal, "log viewer failed", err).WithOp("ui.Run")
	}

	cancel()
	if followErr != nil {
		if err := <-followErr; err != nil && !stderrors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}
