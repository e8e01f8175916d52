package production

import (
	"fmt"
	"strings"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

// Strategy decides which crafters a crop may be handed to
type Strategy int

const (
	// Dedicated pins crafters to one (crop, quality) pair each
	Dedicated Strategy = iota
	// Open shares one pool of seeders and jars across all crops
	Open
)

func (s Strategy) String() string {
	if s == Open {
		return "open"
	}
	return "dedicated"
}

// MarshalText encodes the strategy by name
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts "dedicated", "open" or "vip"
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStrategy parses a strategy name; the empty string means Dedicated
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dedicated":
		return Dedicated, nil
	case "open", "vip":
		return Open, nil
	default:
		return Dedicated, fmt.Errorf(ErrFmtBadStrategy, domain.ErrInvalidInput, name)
	}
}
