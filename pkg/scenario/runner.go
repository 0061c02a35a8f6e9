package scenario

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-drift/domfocus/pkg/errors"
)

// StepResult records the focus state after a step.
type StepResult struct {
	Step   string `json:"step" yaml:"step"`
	Active string `json:"active" yaml:"active"`
}

// Result is the outcome of a scenario run.
type Result struct {
	Name   string       `json:"name" yaml:"name"`
	Steps  []StepResult `json:"steps" yaml:"steps"`
	Trace  []TraceEvent `json:"trace" yaml:"trace"`
	Active string       `json:"active" yaml:"active"`
}

// Runner replays scenarios.
type Runner struct {
	Logger zerolog.Logger
}

// NewRunner returns a Runner that logs to logger.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{Logger: logger}
}

// Run builds the scenario's document and applies its steps in order.
// It stops at the first failing step or when ctx is done.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Result, error) {
	sess, err := Build(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	log := r.Logger.With().
		Str("scenario", s.Name).
		Str("document", sess.Document().ID()).
		Logger()

	res := &Result{Name: s.Name}
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := sess.Apply(step); err != nil {
			return res, fmt.Errorf("%s: step %d (%s): %w", s.Name, i, step, err)
		}
		active := sess.Active()
		res.Steps = append(res.Steps, StepResult{Step: step.String(), Active: active})
		log.Debug().Int("step", i).Stringer("op", step).Str("active", active).Msg("step applied")
	}
	res.Trace = sess.Trace()
	res.Active = sess.Active()
	return res, nil
}

// Check compares the result with exp and reports every mismatch.
func (r *Result) Check(exp *Expect) error {
	if exp == nil {
		return nil
	}
	var problems []string
	if exp.Active != nil && *exp.Active != r.Active {
		problems = append(problems, fmt.Sprintf("active element: got %q, want %q", r.Active, *exp.Active))
	}
	if exp.Events != nil {
		got := make([]string, len(r.Trace))
		for i, ev := range r.Trace {
			got[i] = ev.String()
		}
		if !slices.Equal(got, exp.Events) {
			problems = append(problems, fmt.Sprintf("events:\n  got:  %s\n  want: %s",
				strings.Join(got, ", "), strings.Join(exp.Events, ", ")))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New("scenario.Check", errors.KindScenario, "%s: %s", r.Name, strings.Join(problems, "; "))
}
