package git

import (
	"context"
	"fmt"
	"strings"
)

// Step names one stage of the publish sequence
type Step string

const (
	StepStage  Step = "stage"
	StepCommit Step = "commit"
	StepPush   Step = "push"
)

// StepResult is the outcome of one publish step
type StepResult struct {
	Step   Step
	Result Result
	Err    error
}

// PublishReport lists the steps that ran, in order.
// Steps after the first failure are not run and do not appear.
type PublishReport struct {
	Message string
	Steps   []StepResult
}

// Failed returns the failing step, if any
func (r PublishReport) Failed() (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Err != nil {
			return s, true
		}
	}
	return StepResult{}, false
}

// Options configures a Client
type Options struct {
	// Dir is the working directory git runs in
	Dir string
	// Remote is the push remote
	Remote string
	// Branch is the push branch; empty pushes the remote's default refspec
	Branch string
	// ShortStatus switches the status query to --short --branch
	ShortStatus bool
}

// Client issues the fixed set of git operations gitdash needs
type Client struct {
	runner Runner
	opts   Options
}

// NewClient creates a Client over runner
func NewClient(runner Runner, opts Options) *Client {
	if strings.TrimSpace(opts.Remote) == "" {
		opts.Remote = "origin"
	}
	return &Client{runner: runner, opts: opts}
}

// Remote returns the push remote
func (c *Client) Remote() string { return c.opts.Remote }

// Branch returns the push branch, possibly empty
func (c *Client) Branch() string { return c.opts.Branch }

// StageAll stages every change in the working tree (git add -A)
func (c *Client) StageAll(ctx context.Context) (Result, error) {
	return c.runner.Run(ctx, c.opts.Dir, "add", "-A")
}

// Commit records the index with message as the commit message
func (c *Client) Commit(ctx context.Context, message string) (Result, error) {
	return c.runner.Run(ctx, c.opts.Dir, "commit", "-m", message)
}

// Push pushes to the configured remote and branch
func (c *Client) Push(ctx context.Context) (Result, error) {
	return c.runner.Run(ctx, c.opts.Dir, c.PushArgs()...)
}

// PushArgs returns the arguments Push passes to git
func (c *Client) PushArgs() []string {
	args := []string{"push", c.opts.Remote}
	if c.opts.Branch != "" {
		args = append(args, c.opts.Branch)
	}
	return args
}

// StatusArgs returns the arguments Status passes to git
func (c *Client) StatusArgs() []string {
	if c.opts.ShortStatus {
		return []string{"status", "--short", "--branch"}
	}
	return []string{"status"}
}

// Status returns the raw working-tree status text
func (c *Client) Status(ctx context.Context) (string, error) {
	res, err := c.runner.Run(ctx, c.opts.Dir, c.StatusArgs()...)
	if err != nil {
		return res.Stdout, err
	}
	return res.Stdout, nil
}

// Publish stages everything, commits with message and pushes.
// It stops at the first failing step and returns that step's error.
func (c *Client) Publish(ctx context.Context, message string) (PublishReport, error) {
	report := PublishReport{Message: message}
	if strings.TrimSpace(message) == "" {
		return report, ErrEmptyCommitMessage
	}

	steps := []struct {
		step Step
		run  func(context.Context) (Result, error)
	}{
		{StepStage, c.StageAll},
		{StepCommit, func(ctx context.Context) (Result, error) { return c.Commit(ctx, message) }},
		{StepPush, c.Push},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("publish interrupted before %s: %w", s.step, err)
		}
		res, err := s.run(ctx)
		report.Steps = append(report.Steps, StepResult{Step: s.step, Result: res, Err: err})
		if err != nil {
			return report, fmt.Errorf("%s: %w", s.step, err)
		}
	}

	return report, nil
}
