// Package scenario loads and replays focus scenarios described in YAML.
//
// A scenario declares a document tree, optional detached elements, listeners
// that react to focus events (including re-entrant focus and blur calls), a
// list of steps, and optional expectations:
//
//	version: v1.0.0
//	name: hand-off
//	document:
//	  tag: html
//	  children:
//	    - {tag: input, id: a}
//	    - {tag: input, id: b}
//	steps:
//	  - focus: a
//	  - focus: b
//	expect:
//	  active: b
//	  events:
//	    - focus a rel=null
//	    - focusin a rel=null
//	    - blur a rel=b
//	    - focusout a rel=b
//	    - focus b rel=a
//	    - focusin b rel=a
//
// [Runner.Run] replays the steps and records every focus-family event at its
// target. [Result.Check] compares the outcome with the expectations.
package scenario
