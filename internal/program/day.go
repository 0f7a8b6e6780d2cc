package program

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Day identifies one of the four weekly sessions. The program uses the French
// day names of the original Hybrid Master 51 plan; Maison is the short home
// session performed twice a week on top of the three gym days.
type Day int

const (
	Dimanche Day = iota
	Mardi
	Vendredi
	Maison
)

var dayNames = [...]string{"dimanche", "mardi", "vendredi", "maison"}

// Days returns the four session days in program order.
func Days() []Day {
	return []Day{Dimanche, Mardi, Vendredi, Maison}
}

// DayNames returns the ordered day-name list as used in exports and queries.
func DayNames() []string {
	names := make([]string, len(dayNames))
	copy(names, dayNames[:])
	return names
}

func (d Day) String() string {
	if d < Dimanche || d > Maison {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// abbrev is the short form used in exercise IDs (w3_dim_1, w3_maison_1, ...).
func (d Day) abbrev() string {
	switch d {
	case Dimanche:
		return "dim"
	case Mardi:
		return "mar"
	case Vendredi:
		return "ven"
	default:
		return "maison"
	}
}

// ParseDay converts an external day string into a Day. Matching is
// case-insensitive. This is the single validation boundary for day names;
// everything past it works with the typed enum.
func ParseDay(s string) (Day, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dimanche":
		return Dimanche, nil
	case "mardi":
		return Mardi, nil
	case "vendredi":
		return Vendredi, nil
	case "maison":
		return Maison, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

// MarshalJSON renders the day as its lowercase name.
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts any casing of the four day names.
func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
