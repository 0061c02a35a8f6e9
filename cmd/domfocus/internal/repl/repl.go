// Package repl provides the interactive focus shell.
package repl

import (
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/go-drift/domfocus/pkg/errors"
	"github.com/go-drift/domfocus/pkg/scenario"
)

// Shell interprets commands against a scenario session.
type Shell struct {
	sess *scenario.Session
	out  io.Writer
	seen int
}

// New creates a shell for sess writing to out.
func New(sess *scenario.Session, out io.Writer) *Shell {
	return &Shell{sess: sess, out: out, seen: len(sess.Trace())}
}

// Exec runs one command line. It reports whether the shell should exit.
// Command failures are printed and reported, never returned.
func (s *Shell) Exec(line string) (quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "quit", "exit", "q":
		return true
	case "tree", "t":
		if err := s.sess.Render(s.out); err != nil {
			s.fail(err)
		}
	case "active", "a":
		if active := s.sess.Active(); active != "" {
			fmt.Fprintln(s.out, active)
		} else {
			fmt.Fprintln(s.out, "(none)")
		}
	case "trace":
		for _, ev := range s.sess.Trace() {
			fmt.Fprintf(s.out, "%d: %s\n", ev.Step, ev)
		}
	case "reset":
		s.sess.ResetTrace()
		s.seen = 0
	default:
		step, err := parseStep(cmd, args)
		if err != nil {
			s.fail(err)
			return false
		}
		s.apply(step)
	}
	return false
}

func (s *Shell) apply(step scenario.Step) {
	if err := s.sess.Apply(step); err != nil {
		s.fail(err)
		return
	}
	trace := s.sess.Trace()
	for _, ev := range trace[s.seen:] {
		fmt.Fprintf(s.out, "  %s\n", ev)
	}
	s.seen = len(trace)
}

func (s *Shell) fail(err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
	var domErr *errors.DOMError
	if stderrors.As(err, &domErr) {
		errors.Report(domErr)
	}
}

// parseStep converts a mutating command into a scenario step.
func parseStep(cmd string, args []string) (scenario.Step, error) {
	need := func(n int, usage string) error {
		if len(args) != n {
			return errors.New("repl", errors.KindScenario, "usage: %s", usage)
		}
		return nil
	}

	switch cmd {
	case "focus", "f":
		if err := need(1, "focus <id>"); err != nil {
			return scenario.Step{}, err
		}
		return scenario.Step{Focus: args[0]}, nil
	case "blur", "b":
		if err := need(1, "blur <id>"); err != nil {
			return scenario.Step{}, err
		}
		return scenario.Step{Blur: args[0]}, nil
	case "set":
		if err := need(2, "set <id> <name>[=value]"); err != nil {
			return scenario.Step{}, err
		}
		name, value, _ := strings.Cut(args[1], "=")
		if unquoted, err := strconv.Unquote(value); err == nil {
			value = unquoted
		}
		return scenario.Step{SetAttribute: &scenario.AttributeStep{Target: args[0], Name: name, Value: value}}, nil
	case "unset":
		if err := need(2, "unset <id> <name>"); err != nil {
			return scenario.Step{}, err
		}
		return scenario.Step{RemoveAttribute: &scenario.AttributeStep{Target: args[0], Name: args[1]}}, nil
	case "remove", "rm":
		if err := need(1, "remove <id>"); err != nil {
			return scenario.Step{}, err
		}
		return scenario.Step{Remove: args[0]}, nil
	case "append":
		if err := need(2, "append <id> <parent-id>"); err != nil {
			return scenario.Step{}, err
		}
		return scenario.Step{Append: &scenario.AppendStep{Target: args[0], Parent: args[1]}}, nil
	default:
		return scenario.Step{}, errors.New("repl", errors.KindScenario,
			"unknown command %q (type 'help' for commands)", cmd)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  focus <id>               Focus an element
  blur <id>                Blur an element
  set <id> <name>[=value]  Set an attribute
  unset <id> <name>        Remove an attribute
  remove <id>              Detach an element from its parent
  append <id> <parent-id>  Move an element under another
  tree                     Show the document tree
  active                   Show the focused element
  trace                    Show all recorded focus events
  reset                    Clear the recorded events
  help                     Show this help
  quit                     Exit
`)
}

// Run reads commands from a readline prompt until quit or EOF.
func Run(sess *scenario.Session, prompt string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	sh := New(sess, rl.Stdout())
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		if sh.Exec(line) {
			return nil
		}
	}
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("focus"),
		readline.PcItem("blur"),
		readline.PcItem("set"),
		readline.PcItem("unset"),
		readline.PcItem("remove"),
		readline.PcItem("append"),
		readline.PcItem("tree"),
		readline.PcItem("active"),
		readline.PcItem("trace"),
		readline.PcItem("reset"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
