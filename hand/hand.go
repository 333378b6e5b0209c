// Package hand holds the concealed-tiles-plus-called-melds container and its
// string parser. Grounded on the teacher's Tile/Meld types in
// runtime/game/engines/mahjong/material.go, generalized to the called-meld
// shape spec.md §3 requires (category + source, immutable once built).
package hand

import "mahjong/tile"

// OpenCategory is the kind of a called meld.
type OpenCategory uint8

const (
	Chi OpenCategory = iota // run claimed from the left player's discard
	Pon                     // triplet claimed from any discard
	Kan                     // quad, claimed or concealed
)

// OpenSource identifies who a called meld was claimed from. Concealed kans
// use Myself; Unknown is used when the source seat was not supplied.
type OpenSource uint8

const (
	Unknown OpenSource = iota
	Myself
	Left
	Across
	Right
)

// CalledMeld is an immutable claimed group. A Kan stores only three of its
// four identical tiles but always counts as four of that tile in a Summary.
type CalledMeld struct {
	Tiles    [3]tile.Type
	Category OpenCategory
	Source   OpenSource
}

// Tile returns the meld's identifying tile (they are all equal for Pon/Kan;
// the lowest of the run for Chi).
func (m CalledMeld) Tile() tile.Type { return m.Tiles[0] }

// Hand is the concealed multiset plus any called melds and the drawn tile.
// Immutable once constructed by the parser.
type Hand struct {
	Concealed []tile.Type
	Called    []CalledMeld
	Drawn     *tile.Type
}

// New builds a Hand with no called melds.
func New(concealed []tile.Type, drawn *tile.Type) Hand {
	return Hand{Concealed: concealed, Drawn: drawn}
}

// IsConcealed reports whether the hand has no called melds other than
// concealed kans (the teacher's OpenSource == Myself marks a concealed kan).
func (h Hand) IsConcealed() bool {
	for _, m := range h.Called {
		if !(m.Category == Kan && m.Source == Myself) {
			return false
		}
	}
	return true
}

// HasOpenMelds reports whether the hand has any called meld that is not a
// concealed kan — the direct "is this hand open" test most predicates want.
func (h Hand) HasOpenMelds() bool {
	for _, m := range h.Called {
		if m.Category == Kan && m.Source == Myself {
			continue
		}
		return true
	}
	return false
}

// KanCount returns how many called melds are kans (open or concealed).
func (h Hand) KanCount() int {
	n := 0
	for _, m := range h.Called {
		if m.Category == Kan {
			n++
		}
	}
	return n
}

// Summary converts the hand to the canonical 34-count vector: concealed
// tiles, called-meld tiles (a Kan contributes 4 of its tile), and the drawn
// tile if present.
func (h Hand) Summary() tile.Summary {
	var s tile.Summary
	for _, t := range h.Concealed {
		s[t]++
	}
	for _, m := range h.Called {
		switch m.Category {
		case Kan:
			s[m.Tile()] += 4
		case Chi:
			s[m.Tiles[0]]++
			s[m.Tiles[1]]++
			s[m.Tiles[2]]++
		default: // Pon
			s[m.Tile()] += 3
		}
	}
	if h.Drawn != nil {
		s[*h.Drawn]++
	}
	return s
}

// ConcealedSummary is the count vector of only the tiles still in hand:
// Concealed plus Drawn, excluding every called meld. The analyzer runs its
// search over this vector so a called Pon/Chi/Kan never gets mistaken for a
// concealed block.
func (h Hand) ConcealedSummary() tile.Summary {
	var s tile.Summary
	for _, t := range h.Concealed {
		s[t]++
	}
	if h.Drawn != nil {
		s[*h.Drawn]++
	}
	return s
}
