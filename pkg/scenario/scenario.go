package scenario

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/domfocus/pkg/errors"
)

// SupportedMajor is the scenario format major version this package reads.
const SupportedMajor = "v1"

// Scenario is a parsed scenario file.
type Scenario struct {
	Version     string         `yaml:"version"`
	Name        string         `yaml:"name,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Document    NodeSpec       `yaml:"document"`
	Detached    []NodeSpec     `yaml:"detached,omitempty"`
	Listeners   []ListenerSpec `yaml:"listeners,omitempty"`
	Steps       []Step         `yaml:"steps"`
	Expect      *Expect        `yaml:"expect,omitempty"`
}

// NodeSpec describes an element and its subtree.
type NodeSpec struct {
	Tag        string            `yaml:"tag"`
	ID         string            `yaml:"id,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Children   []NodeSpec        `yaml:"children,omitempty"`
}

// Listener actions.
const (
	ActionFocus           = "focus"
	ActionBlur            = "blur"
	ActionPreventDefault  = "prevent-default"
	ActionStopPropagation = "stop-propagation"
)

// ListenerSpec attaches a reaction to an event on an element.
type ListenerSpec struct {
	// Target is the id of the element the listener is registered on.
	Target string `yaml:"target"`
	// Event is the event type, e.g. "blur".
	Event string `yaml:"event"`
	// Action is one of the Action constants.
	Action string `yaml:"action"`
	// Subject is the element focused or blurred by the action. Defaults to Target.
	Subject string `yaml:"subject,omitempty"`
	Once    bool   `yaml:"once,omitempty"`
	Capture bool   `yaml:"capture,omitempty"`
}

// Step is a single operation. Exactly one field must be set.
type Step struct {
	Focus           string         `yaml:"focus,omitempty"`
	Blur            string         `yaml:"blur,omitempty"`
	SetAttribute    *AttributeStep `yaml:"set-attribute,omitempty"`
	RemoveAttribute *AttributeStep `yaml:"remove-attribute,omitempty"`
	Remove          string         `yaml:"remove,omitempty"`
	Append          *AppendStep    `yaml:"append,omitempty"`
}

// AttributeStep sets or removes an attribute.
type AttributeStep struct {
	Target string `yaml:"target"`
	Name   string `yaml:"name"`
	Value  string `yaml:"value,omitempty"`
}

// AppendStep moves Target under Parent.
type AppendStep struct {
	Target string `yaml:"target"`
	Parent string `yaml:"parent"`
}

// Expect holds the assertions checked after a run.
type Expect struct {
	// Active is the id of the element expected to be focused at the end.
	// An empty string means nothing is focused; nil skips the check.
	Active *string `yaml:"active,omitempty"`
	// Events is the expected trace, formatted as TraceEvent.String.
	// Nil skips the check.
	Events []string `yaml:"events,omitempty"`
}

// String describes the step in the same syntax the REPL accepts.
func (s Step) String() string {
	switch {
	case s.Focus != "":
		return "focus " + s.Focus
	case s.Blur != "":
		return "blur " + s.Blur
	case s.SetAttribute != nil:
		return fmt.Sprintf("set %s %s=%q", s.SetAttribute.Target, s.SetAttribute.Name, s.SetAttribute.Value)
	case s.RemoveAttribute != nil:
		return fmt.Sprintf("unset %s %s", s.RemoveAttribute.Target, s.RemoveAttribute.Name)
	case s.Remove != "":
		return "remove " + s.Remove
	case s.Append != nil:
		return fmt.Sprintf("append %s %s", s.Append.Target, s.Append.Parent)
	default:
		return "<empty step>"
	}
}

func (s Step) count() int {
	n := 0
	for _, set := range []bool{
		s.Focus != "",
		s.Blur != "",
		s.SetAttribute != nil,
		s.RemoveAttribute != nil,
		s.Remove != "",
		s.Append != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Load parses a scenario and validates its structure.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, errors.New("scenario.Load", errors.KindScenario, "failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks the version and the shape of listeners and steps.
// References to element ids are checked when the scenario is built.
func (s *Scenario) Validate() error {
	const op = "scenario.Validate"
	if !semver.IsValid(s.Version) {
		return errors.New(op, errors.KindScenario, "invalid version %q", s.Version)
	}
	if major := semver.Major(s.Version); major != SupportedMajor {
		return errors.New(op, errors.KindScenario,
			"unsupported version %s (want %s.x.y)", s.Version, SupportedMajor)
	}
	if s.Document.Tag == "" {
		return errors.New(op, errors.KindScenario, "document root needs a tag")
	}
	for i, l := range s.Listeners {
		switch l.Action {
		case ActionFocus, ActionBlur, ActionPreventDefault, ActionStopPropagation:
		default:
			return errors.New(op, errors.KindScenario, "listener %d: unknown action %q", i, l.Action)
		}
		if l.Target == "" || l.Event == "" {
			return errors.New(op, errors.KindScenario, "listener %d: target and event are required", i)
		}
	}
	for i, step := range s.Steps {
		if n := step.count(); n != 1 {
			return errors.New(op, errors.KindScenario, "step %d: want exactly one operation, got %d", i, n)
		}
	}
	return nil
}
