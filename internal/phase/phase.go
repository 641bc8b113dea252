package phase

import "slices"

// ID identifies one of the five incident-response phases.
type ID string

// Phase identifiers, in display order.
const (
	Identification ID = "identification"
	Containment    ID = "containment"
	Resolution     ID = "resolution"
	Recovery       ID = "recovery"
	PostIncident   ID = "post-incident"
)

// order is the fixed enumeration order.
var order = [...]ID{Identification, Containment, Resolution, Recovery, PostIncident}

// Count is the number of phases.
const Count = len(order)

// IDs returns all phase identifiers in display order.
func IDs() []ID {
	return slices.Clone(order[:])
}

// String returns the slug form of the ID.
func (id ID) String() string {
	return string(id)
}

// Valid reports whether id is one of the five phases.
func (id ID) Valid() bool {
	return id.Index() >= 0
}

// Index returns the zero-based display position of id, or -1 if id is not a phase.
func (id ID) Index() int {
	for i, p := range order {
		if p == id {
			return i
		}
	}
	return -1
}

// Next returns the phase after id, wrapping from the last to the first.
// Invalid IDs return the first phase.
func (id ID) Next() ID {
	i := id.Index()
	if i < 0 {
		return order[0]
	}
	return order[(i+1)%Count]
}

// Prev returns the phase before id, wrapping from the first to the last.
// Invalid IDs return the first phase.
func (id ID) Prev() ID {
	i := id.Index()
	if i < 0 {
		return order[0]
	}
	return order[(i+Count-1)%Count]
}

// Icon is a symbolic reference to a glyph. The rendering layer decides
// what each icon looks like.
type Icon string

// Icons referenced by the registry and the surrounding layout.
const (
	IconSearch        Icon = "search"
	IconShield        Icon = "shield"
	IconAlertTriangle Icon = "alert-triangle"
	IconRefresh       Icon = "refresh"
	IconFileSearch    Icon = "file-search"
	IconShieldCheck   Icon = "shield-check"
	IconCheckCircle   Icon = "check-circle"
)

// Record is the display content for a phase.
type Record struct {
	ID          ID
	Title       string
	Description string
	Icon        Icon
	// Actions are in recommended order; the order is part of the content.
	Actions []string
}

// clone returns a copy of r that shares no slices with r.
func (r Record) clone() Record {
	r.Actions = slices.Clone(r.Actions)
	return r
}
