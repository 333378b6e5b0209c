package analyzer

import (
	"mahjong/block"
	"mahjong/tile"
)

// analyzeSevenPairs implements the seven-distinct-pairs grammar. Formula
// from spec.md §4.3: shanten = (7 - pairs) + max(0, 7 - kinds) - 1, where
// pairs counts tile types with count >= 2 and kinds counts distinct tile
// types present at all (a hand with four of one tile only has one kind and
// one usable pair, not two, since the other two copies aren't a second
// distinct pair).
func analyzeSevenPairs(summary tile.Summary) Analysis {
	pairs := 0
	kinds := 0
	var same2 []block.Block
	for i, c := range summary {
		if c == 0 {
			continue
		}
		kinds++
		if c >= 2 {
			pairs++
			same2 = append(same2, block.Same2(tile.Type(i)))
		}
	}

	shanten := (7 - pairs)
	if missing := 7 - kinds; missing > 0 {
		shanten += missing
	}
	shanten--

	return Analysis{
		Shanten: shanten,
		Form:    SevenPairs,
		Same2:   same2,
	}
}

// thirteenOrphanTypes are the six terminals plus the seven honors — the
// only tiles a thirteen-orphans hand may contain.
var thirteenOrphanTypes = [13]tile.Type{
	tile.M1, tile.M9, tile.P1, tile.P9, tile.S1, tile.S9,
	tile.Z1, tile.Z2, tile.Z3, tile.Z4, tile.Z5, tile.Z6, tile.Z7,
}

// analyzeThirteenOrphans implements the thirteen-orphans grammar. Formula
// from spec.md §4.3: shanten = (14 - kinds - pairBonus) - 1, where kinds
// counts how many of the thirteen required types are present at all and
// pairBonus is 1 if any of them is held in duplicate (the pair of the hand).
// Only the shanten number is meaningful for this grammar; there is no block
// decomposition to report.
func analyzeThirteenOrphans(summary tile.Summary) Analysis {
	kinds := 0
	hasPair := false
	for _, t := range thirteenOrphanTypes {
		c := summary[t]
		if c == 0 {
			continue
		}
		kinds++
		if c >= 2 {
			hasPair = true
		}
	}

	pairBonus := 0
	if hasPair {
		pairBonus = 1
	}
	shanten := (14 - kinds - pairBonus) - 1

	return Analysis{
		Shanten: shanten,
		Form:    ThirteenOrphans,
	}
}
