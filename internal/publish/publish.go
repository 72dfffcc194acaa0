// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish runs the README conversion and the package upload in order,
// stopping at the first step whose command exits non-zero.
package publish

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pkgpublish/internal/execx"
	"github.com/pdiddy/pkgpublish/pkg/types"
)

// Process exit codes for the CLI.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// State is the position of a run in the step sequence.
type State string

const (
	StateStart      State = "start"
	StateConverting State = "converting"
	StateConverted  State = "converted"
	StatePublishing State = "publishing"
	StatePublished  State = "published"
	StateFailed     State = "failed"
)

// Announcer prints the progress line shown before a step runs.
type Announcer interface {
	Step(category, message string)
}

// Step describes one external command and how it is announced.
type Step struct {
	Category string   `yaml:"category"`
	Message  string   `yaml:"message"`
	Command  []string `yaml:"command"`
	Reason   string   `yaml:"fail_reason"`

	// running and done are the states entered before and after the command.
	running State
	done    State
	err     error
}

// Steps returns the fixed sequence for cfg: convert, then publish.
func Steps(cfg types.PublishConfig) []Step {
	conv := cfg.Converter
	pkg := cfg.Packager
	return []Step{
		{
			Category: "Convert",
			Message:  conv.Input + " -> " + conv.Output,
			Command:  append([]string{conv.Bin}, conv.Args()...),
			Reason:   "fails to convert " + conv.Input,
			running:  StateConverting,
			done:     StateConverted,
			err:      ErrConvert,
		},
		{
			Category: "Publishing..",
			Message:  execx.CommandLine(pkg.Bin, pkg.Args()...),
			Command:  append([]string{pkg.Bin}, pkg.Args()...),
			Reason:   "fails to publish to PyPI",
			running:  StatePublishing,
			done:     StatePublished,
			err:      ErrPublish,
		},
	}
}

// Runner executes the step sequence. It never exits the process; the caller
// maps a returned error to ExitFailure.
type Runner struct {
	steps []Step
	log   Announcer
	exec  execx.Executor
	state State

	// DryRun prints each command instead of running it.
	DryRun bool
	// Out receives the dry-run command lines.
	Out io.Writer
}

// NewRunner builds a Runner for cfg. The config is validated first.
func NewRunner(cfg types.PublishConfig, log Announcer, exec execx.Executor) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid publish config: %w", err)
	}
	return &Runner{
		steps: Steps(cfg),
		log:   log,
		exec:  exec,
		state: StateStart,
		Out:   io.Discard,
	}, nil
}

// State returns the state reached by the last Run.
func (r *Runner) State() State { return r.state }

// Run announces and executes each step in order. The first failing step
// yields a *StepError and the remaining steps are skipped.
func (r *Runner) Run(ctx context.Context) error {
	r.state = StateStart
	for _, s := range r.steps {
		r.state = s.running
		r.log.Step(s.Category, s.Message)

		if r.DryRun {
			fmt.Fprintf(r.Out, "+ %s\n", execx.CommandLine(s.Command[0], s.Command[1:]...))
			r.state = s.done
			continue
		}

		res := r.exec.Run(ctx, s.Command[0], s.Command[1:]...)
		if !res.OK() {
			r.state = StateFailed
			return &StepError{
				Step:   s.Category,
				Reason: s.Reason,
				Code:   res.Code,
				Kind:   s.err,
				Err:    res.Err,
			}
		}
		r.state = s.done
	}
	return nil
}
