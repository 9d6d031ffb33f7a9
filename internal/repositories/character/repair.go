package character

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/toon-tailor/internal/entities"
)

// Dropped describes a stored entry Inspect could not keep
type Dropped struct {
	Index  int
	ID     string
	Reason string
}

// Report is the result of inspecting a stored collection
type Report struct {
	// Unreadable is set when the value is not a JSON array at all
	Unreadable bool
	Detail     string
	Entries    int
	Kept       []*entities.Character
	Dropped    []Dropped
}

// Clean reports whether the collection needs no repair
func (r *Report) Clean() bool {
	return !r.Unreadable && len(r.Dropped) == 0
}

// Inspect checks a stored collection entry by entry. Null entries, entries
// that do not decode as a character, entries without an ID and later
// duplicates of an ID are dropped; everything else is kept in order.
func Inspect(data []byte) *Report {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return &Report{Unreadable: true, Detail: err.Error(), Kept: []*entities.Character{}}
	}

	report := &Report{Entries: len(entries), Kept: make([]*entities.Character, 0, len(entries))}
	seen := make(map[string]bool, len(entries))
	for i, raw := range entries {
		var c *entities.Character
		if err := json.Unmarshal(raw, &c); err != nil {
			report.Dropped = append(report.Dropped, Dropped{Index: i, Reason: err.Error()})
			continue
		}
		switch {
		case c == nil:
			report.Dropped = append(report.Dropped, Dropped{Index: i, Reason: "null entry"})
		case c.ID == "":
			report.Dropped = append(report.Dropped, Dropped{Index: i, Reason: "missing id"})
		case seen[c.ID]:
			report.Dropped = append(report.Dropped, Dropped{Index: i, ID: c.ID, Reason: fmt.Sprintf("duplicate of id %s", c.ID)})
		default:
			seen[c.ID] = true
			report.Kept = append(report.Kept, c)
		}
	}
	return report
}
