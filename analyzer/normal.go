package analyzer

import (
	"mahjong/block"
	"mahjong/tile"
)

// normalSearch carries the mutable state of the recursive decomposition
// search: the working copy of the tile counts (mutated in place and always
// restored before a call returns), the blocks chosen on the current path,
// and the best result seen so far.
type normalSearch struct {
	counts tile.Summary

	// lockedMelds counts melds already fixed by called Pon/Chi/Kan groups.
	// They never enter the recursion (the search only ever sees concealed
	// tiles), but they still occupy slots in the 4-major-blocks cap and in
	// the final meld count the shanten formula uses.
	lockedMelds int

	curSame3       []block.Block
	curSequential3 []block.Block
	curSame2       []block.Block
	curSequential2 []block.Block
	pairUsed       bool

	bestShanten     int
	bestSame3       []block.Block
	bestSequential3 []block.Block
	bestSame2       []block.Block
	bestSequential2 []block.Block
	bestSingle      []tile.Type
}

// analyzeNormal computes the shanten and decomposition of summary under the
// standard four-melds-plus-pair grammar. Grounded on spec.md §4.3's
// description of the reference recursive search: independent blocks are not
// peeled in a separate pass (that pre-pass in the original implementation is
// a search-space pruning optimization, not a correctness requirement — a
// single exhaustive recursion over all 34 tile slots finds the same optimal
// decomposition directly, per the "search space stays small" design note in
// spec.md §9).
func analyzeNormal(summary tile.Summary, lockedMelds int) Analysis {
	s := &normalSearch{counts: summary, bestShanten: 9, lockedMelds: lockedMelds}
	s.recurse(0)

	return Analysis{
		Shanten:     s.bestShanten,
		Form:        Normal,
		Same3:       s.bestSame3,
		Sequential3: s.bestSequential3,
		Same2:       s.bestSame2,
		Sequential2: s.bestSequential2,
		Single:      s.bestSingle,
	}
}

// majorBlocks is the number of melds-or-partials chosen so far on the
// current path, excluding the pair. A complete hand needs exactly four of
// these, so the search never benefits from extracting a fifth: capping the
// branch here is what keeps the 8-2*melds-partials formula below valid
// (without the cap a hand could "find" more 2-tile partials than it has
// meld slots for and understate its own shanten).
func (s *normalSearch) majorBlocks() int {
	return s.lockedMelds + len(s.curSame3) + len(s.curSequential3) + len(s.curSequential2)
}

func (s *normalSearch) recurse(idx int) {
	for idx < tile.Count && s.counts[idx] == 0 {
		idx++
	}
	if idx >= tile.Count {
		s.evaluate()
		return
	}
	t := tile.Type(idx)
	suited := tile.IsNumbered(t)
	n := tile.Number(t)

	if s.counts[t] >= 3 && s.majorBlocks() < 4 {
		s.counts[t] -= 3
		s.curSame3 = append(s.curSame3, block.Same3(t))
		// Recurse at the same idx, not idx+1: when the original count was
		// 4, the copy of t left over after the triplet may still start a
		// run, a partial or the pair.
		s.recurse(idx)
		s.curSame3 = s.curSame3[:len(s.curSame3)-1]
		s.counts[t] += 3
	}

	if suited && n <= 7 && s.majorBlocks() < 4 &&
		s.counts[t] > 0 && s.counts[t+1] > 0 && s.counts[t+2] > 0 {
		s.counts[t]--
		s.counts[t+1]--
		s.counts[t+2]--
		s.curSequential3 = append(s.curSequential3, block.Sequential3(t))
		// Same reasoning: a second identical run (iipeikou/ryanpeikou shapes)
		// starts at the same t, so the cursor must not skip past it yet.
		s.recurse(idx)
		s.curSequential3 = s.curSequential3[:len(s.curSequential3)-1]
		s.counts[t]++
		s.counts[t+1]++
		s.counts[t+2]++
	}

	if s.counts[t] >= 2 && !s.pairUsed {
		s.counts[t] -= 2
		s.curSame2 = append(s.curSame2, block.Same2(t))
		s.pairUsed = true
		s.recurse(idx)
		s.pairUsed = false
		s.curSame2 = s.curSame2[:len(s.curSame2)-1]
		s.counts[t] += 2
	}

	if suited && n <= 8 && s.majorBlocks() < 4 &&
		s.counts[t] > 0 && s.counts[t+1] > 0 {
		s.counts[t]--
		s.counts[t+1]--
		s.curSequential2 = append(s.curSequential2, block.Sequential2(t, t+1))
		s.recurse(idx)
		s.curSequential2 = s.curSequential2[:len(s.curSequential2)-1]
		s.counts[t]++
		s.counts[t+1]++
	}

	if suited && n <= 7 && s.majorBlocks() < 4 &&
		s.counts[t] > 0 && s.counts[t+1] == 0 && s.counts[t+2] > 0 {
		s.counts[t]--
		s.counts[t+2]--
		s.curSequential2 = append(s.curSequential2, block.Sequential2(t, t+2))
		s.recurse(idx)
		s.curSequential2 = s.curSequential2[:len(s.curSequential2)-1]
		s.counts[t]++
		s.counts[t+2]++
	}

	// Leave whatever remains of t unused and move on; it surfaces as a
	// leftover single (or singles) if this path turns out to be best.
	s.recurse(idx + 1)
}

func (s *normalSearch) evaluate() {
	melds := s.lockedMelds + len(s.curSame3) + len(s.curSequential3)
	blockTwos := len(s.curSequential2)
	if s.pairUsed {
		blockTwos++
	}
	shanten := 8 - 2*melds - blockTwos
	if shanten >= s.bestShanten {
		return
	}
	s.bestShanten = shanten
	s.bestSame3 = append([]block.Block(nil), s.curSame3...)
	s.bestSequential3 = append([]block.Block(nil), s.curSequential3...)
	s.bestSame2 = append([]block.Block(nil), s.curSame2...)
	s.bestSequential2 = append([]block.Block(nil), s.curSequential2...)

	var singles []tile.Type
	for i, c := range s.counts {
		for n := uint8(0); n < c; n++ {
			singles = append(singles, tile.Type(i))
		}
	}
	s.bestSingle = singles
}
