package anim

import (
	"fmt"
	"strings"
)

// Direction selects which way a driver steps the cursor.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "forward"/"backward" (case-insensitive). An empty
// string means Forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward", "fwd":
		return Forward, nil
	case "backward", "back", "reverse":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("anim: unknown direction %q", s)
	}
}
