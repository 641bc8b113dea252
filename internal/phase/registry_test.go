package phase

import (
	"slices"
	"testing"

	"github.com/Iron-Ham/irframe/internal/errors"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestRegistryKeysMatchRecordIDs(t *testing.T) {
	for _, id := range IDs() {
		count := 0
		for _, rec := range All() {
			if rec.ID == id {
				count++
			}
		}
		if count != 1 {
			t.Errorf("phase %q has %d records, want exactly 1", id, count)
		}

		rec, ok := Lookup(id)
		if !ok {
			t.Errorf("Lookup(%q) not found", id)
			continue
		}
		if rec.ID != id {
			t.Errorf("Lookup(%q).ID = %q", id, rec.ID)
		}
	}
}

func TestAllOrder(t *testing.T) {
	want := []ID{Identification, Containment, Resolution, Recovery, PostIncident}

	for i := 0; i < 3; i++ {
		records := All()
		if len(records) != 5 {
			t.Fatalf("len(All()) = %d, want 5", len(records))
		}
		for j, rec := range records {
			if rec.ID != want[j] {
				t.Errorf("All()[%d].ID = %q, want %q", j, rec.ID, want[j])
			}
		}
	}

	if got := IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestRecordsAreNonEmpty(t *testing.T) {
	for _, rec := range All() {
		t.Run(string(rec.ID), func(t *testing.T) {
			if rec.Title == "" {
				t.Error("Title is empty")
			}
			if rec.Description == "" {
				t.Error("Description is empty")
			}
			if rec.Icon == "" {
				t.Error("Icon is empty")
			}
			if len(rec.Actions) == 0 {
				t.Error("Actions is empty")
			}
		})
	}
}

func TestActionsOrderIsStable(t *testing.T) {
	for _, id := range IDs() {
		first := Get(id).Actions
		for i := 0; i < 5; i++ {
			if again := Get(id).Actions; !slices.Equal(first, again) {
				t.Errorf("%s: actions changed between reads: %v vs %v", id, first, again)
			}
		}
	}
}

func TestReadsReturnCopies(t *testing.T) {
	rec := Get(Recovery)
	rec.Actions[0] = "tampered"
	rec.Actions = append(rec.Actions, "extra")
	rec.Title = "tampered"

	again := Get(Recovery)
	if again.Actions[0] != "Restore from clean backups" {
		t.Errorf("registry action mutated through returned record: %q", again.Actions[0])
	}
	if len(again.Actions) != 4 {
		t.Errorf("len(Actions) = %d, want 4", len(again.Actions))
	}
	if again.Title != "Recovery" {
		t.Errorf("Title = %q, want %q", again.Title, "Recovery")
	}

	all := All()
	all[0].Actions[0] = "tampered"
	if Get(Identification).Actions[0] != "Collect system and network logs" {
		t.Error("registry mutated through All()")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("triage"); ok {
		t.Error("Lookup(triage) should not be found")
	}
}

func TestGetPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get(unknown) should panic")
		}
	}()
	Get("triage")
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    ID
		wantErr bool
	}{
		{"identification", Identification, false},
		{"post-incident", PostIncident, false},
		{"  Containment ", Containment, false},
		{"RECOVERY", Recovery, false},
		{"Attack Identification", Identification, false},
		{"post-incident analysis", PostIncident, false},
		{"1", Identification, false},
		{"3", Resolution, false},
		{"5", PostIncident, false},
		{"0", "", true},
		{"6", "", true},
		{"triage", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseID(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseIDErrors(t *testing.T) {
	_, err := ParseID("triage")
	if !errors.Is(err, errors.ErrUnknownPhase) {
		t.Errorf("ParseID(triage) error = %v, want ErrUnknownPhase", err)
	}
	if !errors.IsNotFound(err) {
		t.Error("expected a NotFoundError")
	}

	_, err = ParseID("   ")
	if !errors.IsValidation(err) {
		t.Errorf("ParseID(blank) error = %v, want ValidationError", err)
	}
}

func TestIDNavigation(t *testing.T) {
	tests := []struct {
		id   ID
		next ID
		prev ID
	}{
		{Identification, Containment, PostIncident},
		{Containment, Resolution, Identification},
		{Resolution, Recovery, Containment},
		{Recovery, PostIncident, Resolution},
		{PostIncident, Identification, Recovery},
		{"bogus", Identification, Identification},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := tt.id.Next(); got != tt.next {
				t.Errorf("%q.Next() = %q, want %q", tt.id, got, tt.next)
			}
			if got := tt.id.Prev(); got != tt.prev {
				t.Errorf("%q.Prev() = %q, want %q", tt.id, got, tt.prev)
			}
		})
	}
}

func TestIDIndexAndValid(t *testing.T) {
	for i, id := range IDs() {
		if id.Index() != i {
			t.Errorf("%q.Index() = %d, want %d", id, id.Index(), i)
		}
		if !id.Valid() {
			t.Errorf("%q.Valid() = false", id)
		}
	}
	if ID("bogus").Valid() {
		t.Error("bogus ID should not be valid")
	}
	if ID("bogus").Index() != -1 {
		t.Error("bogus ID index should be -1")
	}
}

func TestTooling(t *testing.T) {
	blocks := Tooling()
	if len(blocks) != 2 {
		t.Fatalf("len(Tooling()) = %d, want 2", len(blocks))
	}
	if blocks[0].Heading != "Detection & Analysis" {
		t.Errorf("blocks[0].Heading = %q", blocks[0].Heading)
	}
	if blocks[1].Heading != "Containment & Response" {
		t.Errorf("blocks[1].Heading = %q", blocks[1].Heading)
	}
	if !slices.Contains(blocks[0].Tools, "Wireshark") {
		t.Errorf("blocks[0].Tools = %v, want Wireshark", blocks[0].Tools)
	}

	blocks[0].Tools[0] = "tampered"
	if Tooling()[0].Tools[0] != "SIEM (Splunk, ELK Stack)" {
		t.Error("tooling mutated through returned block")
	}
}
