// Package phase defines the five phases of the incident-response framework
// and the selection state used to display one of them.
//
// The registry is a fixed literal built at package init: every [ID] maps to
// exactly one [Record], and the mapping never changes while the process
// runs. Reads hand out copies, so callers cannot alter the shared data.
//
// # Phases
//
// The enumeration order is significant and is the order [All] returns:
//
//	identification → containment → resolution → recovery → post-incident
//
// That order is display order only. Selection does not model a workflow:
// any phase can be selected from any other in one step.
//
// # Selection
//
// A [Selector] holds the active phase. Its zero value and [NewSelector] both
// start at [Identification]. Selecting the already-active phase is a no-op.
//
//	sel := phase.NewSelector()
//	sel.Select(phase.Recovery)
//	rec := sel.Active() // Recovery record
//
// # Read-only Views
//
// [SearchActions] matches actions against a glob pattern and [Export]
// builds a document that can be written as YAML or JSON.
package phase
