package phase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/irframe/internal/errors"
)

// FrameworkTitle is the heading shown above the phase picker.
const FrameworkTitle = "Incident Response Framework"

// FrameworkIcon is the icon shown next to FrameworkTitle.
const FrameworkIcon = IconShieldCheck

var registry = map[ID]Record{
	Identification: {
		ID:          Identification,
		Title:       "Attack Identification",
		Description: "Collect and analyze forensic data to identify the type and scope of the attack.",
		Icon:        IconSearch,
		Actions: []string{
			"Collect system and network logs",
			"Analyze malware indicators",
			"Identify affected systems",
			"Determine attack vector",
		},
	},
	Containment: {
		ID:          Containment,
		Title:       "Containment",
		Description: "Isolate affected systems and prevent further spread of the attack.",
		Icon:        IconShield,
		Actions: []string{
			"Isolate compromised systems",
			"Block malicious IPs",
			"Disable compromised accounts",
			"Enable enhanced monitoring",
		},
	},
	Resolution: {
		ID:          Resolution,
		Title:       "Resolution",
		Description: "Remove threats and patch vulnerabilities to resolve the incident.",
		Icon:        IconAlertTriangle,
		Actions: []string{
			"Remove malware",
			"Patch vulnerabilities",
			"Update security policies",
			"Reset compromised credentials",
		},
	},
	Recovery: {
		ID:          Recovery,
		Title:       "Recovery",
		Description: "Restore systems and validate security measures.",
		Icon:        IconRefresh,
		Actions: []string{
			"Restore from clean backups",
			"Verify system integrity",
			"Monitor for persistence",
			"Resume normal operations",
		},
	},
	PostIncident: {
		ID:          PostIncident,
		Title:       "Post-Incident Analysis",
		Description: "Document findings and implement preventive measures.",
		Icon:        IconFileSearch,
		Actions: []string{
			"Conduct root cause analysis",
			"Update security controls",
			"Document lessons learned",
			"Enhance training programs",
		},
	},
}

// All returns every phase record in display order. The result always has
// Count entries.
func All() []Record {
	records := make([]Record, 0, Count)
	for _, id := range order {
		records = append(records, registry[id].clone())
	}
	return records
}

// Lookup returns the record for id. The boolean is false only for IDs
// outside the enumeration.
func Lookup(id ID) (Record, bool) {
	rec, ok := registry[id]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// Get returns the record for id. It panics if id is not a phase, which
// cannot happen for the exported constants.
func Get(id ID) Record {
	rec, ok := Lookup(id)
	if !ok {
		panic(fmt.Sprintf("phase: no record for %q", id))
	}
	return rec
}

// ParseID resolves user input to a phase. It accepts the slug
// ("post-incident"), the title ("Post-Incident Analysis"), or the 1-based
// display position ("5"). Matching is case-insensitive.
func ParseID(s string) (ID, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return "", errors.NewValidationError("phase name is empty").WithField("phase")
	}

	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= Count {
			return order[n-1], nil
		}
		return "", errors.NewNotFoundError("phase", in).WithCause(errors.ErrUnknownPhase)
	}

	for _, id := range order {
		if strings.EqualFold(in, string(id)) || strings.EqualFold(in, registry[id].Title) {
			return id, nil
		}
	}
	return "", errors.NewNotFoundError("phase", in).WithCause(errors.ErrUnknownPhase)
}

// Validate checks the registry invariants: every phase has exactly one
// record, stored under its own ID, with a title, description, icon and at
// least one non-empty action. A failure is an authoring defect.
func Validate() error {
	var errs []error

	if len(registry) != Count {
		errs = append(errs, fmt.Errorf("registry has %d records, want %d", len(registry), Count))
	}

	for _, id := range order {
		rec, ok := registry[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: missing record", id))
			continue
		}
		if rec.ID != id {
			errs = append(errs, fmt.Errorf("%s: record stored under mismatched key (record id %q)", id, rec.ID))
		}
		if strings.TrimSpace(rec.Title) == "" {
			errs = append(errs, fmt.Errorf("%s: title is empty", id))
		}
		if strings.TrimSpace(rec.Description) == "" {
			errs = append(errs, fmt.Errorf("%s: description is empty", id))
		}
		if rec.Icon == "" {
			errs = append(errs, fmt.Errorf("%s: icon is empty", id))
		}
		if len(rec.Actions) == 0 {
			errs = append(errs, fmt.Errorf("%s: no actions", id))
		}
		for i, action := range rec.Actions {
			if strings.TrimSpace(action) == "" {
				errs = append(errs, fmt.Errorf("%s: action %d is empty", id, i+1))
			}
		}
	}

	return errors.Join(errs...)
}
