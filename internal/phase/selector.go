package phase

// Selector tracks which phase is displayed. The zero value is ready to use
// and starts at Identification.
type Selector struct {
	active ID
}

// NewSelector returns a Selector with Identification active.
func NewSelector() Selector {
	return Selector{active: Identification}
}

// ActiveID returns the identifier of the active phase.
func (s Selector) ActiveID() ID {
	if s.active == "" {
		return Identification
	}
	return s.active
}

// Active returns the record of the active phase.
func (s Selector) Active() Record {
	return Get(s.ActiveID())
}

// IsActive reports whether id is the active phase.
func (s Selector) IsActive(id ID) bool {
	return s.ActiveID() == id
}

// Select makes id the active phase. IDs outside the enumeration are ignored.
func (s *Selector) Select(id ID) {
	if !id.Valid() {
		return
	}
	s.active = id
}
