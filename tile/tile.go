// Package tile defines the numeric tile identity and its classification
// predicates: the primitive vocabulary every other package builds on.
package tile

import "fmt"

// Type is a tile's identity: an index 0..33 grouped into four suits.
type Type uint8

// The 34 tile types, grouped by suit. Honors Z1-Z4 are winds, Z5-Z7 dragons.
const (
	M1 Type = iota
	M2
	M3
	M4
	M5
	M6
	M7
	M8
	M9
	P1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
	P9
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	Z1 // East
	Z2 // South
	Z3 // West
	Z4 // North
	Z5 // White dragon
	Z6 // Green dragon
	Z7 // Red dragon

	Count = 34
)

// Suit identifies which of the four families a Type belongs to.
type Suit uint8

const (
	Character Suit = iota // m
	Circle                // p
	Bamboo                // s
	Honor                 // z
)

func (s Suit) Letter() byte {
	switch s {
	case Character:
		return 'm'
	case Circle:
		return 'p'
	case Bamboo:
		return 's'
	default:
		return 'z'
	}
}

// SuitOf returns which suit t belongs to.
func SuitOf(t Type) Suit {
	switch {
	case t <= M9:
		return Character
	case t <= P9:
		return Circle
	case t <= S9:
		return Bamboo
	default:
		return Honor
	}
}

// Number returns the 1-9 position of t within its suit. Only meaningful for
// suited tiles; returns 0 for honors.
func Number(t Type) int {
	switch SuitOf(t) {
	case Character:
		return int(t-M1) + 1
	case Circle:
		return int(t-P1) + 1
	case Bamboo:
		return int(t-S1) + 1
	default:
		return 0
	}
}

// IsHonor reports whether t is a wind or dragon.
func IsHonor(t Type) bool { return SuitOf(t) == Honor }

// IsNumbered reports whether t belongs to one of the three suited families.
func IsNumbered(t Type) bool { return !IsHonor(t) }

// IsTerminal reports whether t is the 1 or 9 of a suited suit.
func IsTerminal(t Type) bool {
	if IsHonor(t) {
		return false
	}
	n := Number(t)
	return n == 1 || n == 9
}

// IsTerminalOrHonor reports whether t is a terminal or an honor tile —
// the "yaochuu" set used throughout the yaku and fu rules.
func IsTerminalOrHonor(t Type) bool { return IsTerminal(t) || IsHonor(t) }

// Wind enumerates the four seat/round winds, Z1..Z4.
type Wind uint8

const (
	East Wind = iota
	South
	West
	North
)

func (w Wind) String() string {
	switch w {
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "North"
	}
}

// WindTile returns the Type for a wind.
func WindTile(w Wind) Type { return Z1 + Type(w) }

// AsWind reports whether t is a wind tile and, if so, which one.
func AsWind(t Type) (Wind, bool) {
	if t >= Z1 && t <= Z4 {
		return Wind(t - Z1), true
	}
	return 0, false
}

// Dragon enumerates the three dragon tiles, Z5..Z7.
type Dragon uint8

const (
	White Dragon = iota
	Green
	Red
)

func DragonTile(d Dragon) Type { return Z5 + Type(d) }

// AsDragon reports whether t is a dragon tile and, if so, which one.
func AsDragon(t Type) (Dragon, bool) {
	if t >= Z5 && t <= Z7 {
		return Dragon(t - Z5), true
	}
	return 0, false
}

// Summary is the canonical 34-count representation of a hand: each slot
// holds how many copies of that tile type are present (0..4). It is mutated
// only transiently inside the analyzer's recursive search and always
// restored to its input before the search returns.
type Summary [Count]uint8

// Total returns the sum of all counts in the summary.
func (s Summary) Total() int {
	total := 0
	for _, c := range s {
		total += int(c)
	}
	return total
}

func (t Type) String() string {
	if IsHonor(t) {
		return fmt.Sprintf("%d%c", int(t-Z1)+1, Honor.Letter())
	}
	return fmt.Sprintf("%d%c", Number(t), SuitOf(t).Letter())
}
