package cmd

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/domfocus/cmd/domfocus/internal/config"
	"github.com/go-drift/domfocus/pkg/errors"
	"github.com/go-drift/domfocus/pkg/scenario"
)

// report is the serialized outcome of one scenario.
type report struct {
	scenario.Result `yaml:",inline"`
	Passed          bool   `json:"passed" yaml:"passed"`
	Failure         string `json:"failure,omitempty" yaml:"failure,omitempty"`
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Replay scenario files and check their expectations",
		Long: `Replay each scenario file in order and print the recorded focus events.

The command fails if any scenario cannot be loaded or run, or if its
expectations do not match.

Examples:
  domfocus run testdata/handoff.yaml
  domfocus run --format json scenarios/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}
	cmd.Flags().StringP("format", "f", "", "output format: text, json or yaml")
	_ = a.v.BindPFlag("output", cmd.Flags().Lookup("format"))
	return cmd
}

func (a *app) run(cmd *cobra.Command, paths []string) error {
	runner := scenario.NewRunner(a.logger)
	out := cmd.OutOrStdout()

	var reports []report
	failed := 0
	for _, path := range paths {
		s, err := scenario.LoadFile(path)
		if err != nil {
			return err
		}
		res, err := runner.Run(cmd.Context(), s)
		if err != nil {
			return err
		}

		rep := report{Result: *res, Passed: true}
		if err := res.Check(s.Expect); err != nil {
			rep.Passed = false
			rep.Failure = err.Error()
			failed++
			var domErr *errors.DOMError
			if stderrors.As(err, &domErr) {
				errors.Report(domErr)
			}
		}
		if a.cfg.Output == config.OutputText {
			writeText(out, rep)
		}
		reports = append(reports, rep)
	}

	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(paths))
	}
	return nil
}

func writeText(w io.Writer, rep report) {
	status := "PASS"
	if !rep.Passed {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s %s\n", status, rep.Name)
	for _, ev := range rep.Trace {
		fmt.Fprintf(w, "  %d: %s\n", ev.Step, ev)
	}
	active := rep.Active
	if active == "" {
		active = "(none)"
	}
	fmt.Fprintf(w, "  active: %s\n", active)
	if rep.Failure != "" {
		fmt.Fprintf(w, "  %s\n", rep.Failure)
	}
}
