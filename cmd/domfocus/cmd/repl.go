package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/domfocus/cmd/domfocus/internal/repl"
	"github.com/go-drift/domfocus/pkg/scenario"
)

// playground is the document used when repl is started without a file.
var playground = &scenario.Scenario{
	Version: "v1.0.0",
	Name:    "playground",
	Document: scenario.NodeSpec{
		Tag: "html",
		Children: []scenario.NodeSpec{{
			Tag: "body",
			ID:  "body",
			Children: []scenario.NodeSpec{
				{Tag: "input", ID: "a"},
				{Tag: "input", ID: "b"},
				{Tag: "button", ID: "c"},
				{Tag: "div", ID: "panel", Children: []scenario.NodeSpec{
					{Tag: "button", ID: "d"},
				}},
			},
		}},
	},
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl [scenario.yaml]",
		Short: "Explore focus interactively",
		Long: `Start an interactive shell on a document.

With a scenario file, its document and listeners are built and its steps
are replayed before the prompt appears. Without one, a small playground
document is used. Type "help" at the prompt for the command list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := playground
			if len(args) == 1 {
				var err error
				if s, err = scenario.LoadFile(args[0]); err != nil {
					return err
				}
			}
			sess, err := scenario.Build(s)
			if err != nil {
				return err
			}
			for i, step := range s.Steps {
				if err := sess.Apply(step); err != nil {
					return fmt.Errorf("step %d (%s): %w", i, step, err)
				}
			}
			a.logger.Info().Str("scenario", s.Name).Int("steps", len(s.Steps)).Msg("repl ready")
			return repl.Run(sess, a.cfg.Prompt)
		},
	}
}
