package gameplay

import (
	"math"
	"strconv"
	"strings"
)

type Difficulty int

const (
	Normal Difficulty = iota
	Auto
	Zen
	Hardcore
)

// ParseDifficulty maps a CLI word to a difficulty. Unknown words mean Normal.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return Auto
	case "zen":
		return Zen
	case "hardcore":
		return Hardcore
	default:
		return Normal
	}
}

func (d Difficulty) String() string {
	switch d {
	case Auto:
		return "auto"
	case Zen:
		return "zen"
	case Hardcore:
		return "hardcore"
	default:
		return "normal"
	}
}

// FailureQuota is the share of scheduled bubbles that may be missed before
// the run restarts.
func (d Difficulty) FailureQuota() float64 {
	switch d {
	case Auto, Zen:
		return 1.0
	case Hardcore:
		return 0.0
	default:
		return 0.02
	}
}

// AllowedMisses is the miss budget for a song of the given size.
func (d Difficulty) AllowedMisses(scheduled int) int {
	return int(math.Ceil(d.FailureQuota() * float64(scheduled)))
}

// label is the status text shown along the bottom of the board.
func (d Difficulty) label(missed, allowed int) string {
	switch d {
	case Auto:
		return "Auto"
	case Zen:
		return strconv.Itoa(missed)
	case Hardcore:
		return ""
	default:
		return strconv.Itoa(allowed - missed)
	}
}
