package yaku

import (
	"mahjong/analyzer"
	"mahjong/tile"
)

func kokushiMusou(ctx Context) (int, bool) {
	return 13, ctx.Analysis.Form == analyzer.ThirteenOrphans && ctx.Analysis.Shanten == -1
}

func suuankou(ctx Context) (int, bool) {
	if len(ctx.Analysis.Same3) != 4 {
		return 0, false
	}
	for _, b := range ctx.Analysis.Same3 {
		if !ctx.Situation.SelfPicked && b.First() == ctx.WinTile {
			return 0, false // ron completes the last triplet from the outside
		}
	}
	return 13, true
}

func daisangen(ctx Context) (int, bool) {
	n := 0
	for _, b := range tripletBlocks(ctx.Analysis) {
		if _, ok := tile.AsDragon(b.First()); ok {
			n++
		}
	}
	return 13, n == 3
}

func shousuushi(ctx Context) (int, bool) {
	triplets := 0
	pairIsWind := false
	for _, b := range tripletBlocks(ctx.Analysis) {
		if _, ok := tile.AsWind(b.First()); ok {
			triplets++
		}
	}
	for _, b := range ctx.Analysis.Same2 {
		if _, ok := tile.AsWind(b.First()); ok {
			pairIsWind = true
		}
	}
	return 13, triplets == 3 && pairIsWind
}

func daisuushi(ctx Context) (int, bool) {
	n := 0
	for _, b := range tripletBlocks(ctx.Analysis) {
		if _, ok := tile.AsWind(b.First()); ok {
			n++
		}
	}
	return 13, n == 4
}

func tsuuiisou(ctx Context) (int, bool) {
	for _, b := range allBlocks(ctx.Analysis) {
		if !b.HasHonor() {
			return 0, false
		}
	}
	return 13, true
}

func chinroutou(ctx Context) (int, bool) {
	for _, b := range allBlocks(ctx.Analysis) {
		if b.HasHonor() || !b.AllTerminalOrHonor() {
			return 0, false
		}
	}
	return 13, true
}

// greenTiles is the set of tiles (2,3,4,6,8 of bamboo and the green dragon)
// that may appear in an all-green hand.
var greenTiles = map[tile.Type]bool{
	tile.S2: true, tile.S3: true, tile.S4: true, tile.S6: true, tile.S8: true,
	tile.Z6: true,
}

func ryuuiisou(ctx Context) (int, bool) {
	for _, b := range allBlocks(ctx.Analysis) {
		for _, t := range b.Get() {
			if !greenTiles[t] {
				return 0, false
			}
		}
	}
	return 13, true
}

// chuurenpoutou (nine gates) requires a closed, single-suit hand holding at
// least three of the suit's 1 and 9, at least one of every other number, and
// fourteen tiles total — checked directly against the hand's tile counts
// rather than the block decomposition, since the nine-gates shape doesn't
// correspond to any particular partition into melds.
func chuurenpoutou(ctx Context) (int, bool) {
	if ctx.Open() {
		return 0, false
	}
	summary := ctx.Hand.Summary()
	suit, mixed, honorSeen := soleSuit(ctx.Analysis)
	if mixed || suit == nil || honorSeen {
		return 0, false
	}
	base := baseOf(*suit)
	if base < 0 {
		return 0, false
	}
	total := 0
	if summary[base] < 3 || summary[base+8] < 3 {
		return 0, false
	}
	for n := 0; n < 9; n++ {
		c := summary[tile.Type(base+n)]
		total += int(c)
		min := uint8(1)
		if n == 0 || n == 8 {
			min = 3
		}
		if c < min {
			return 0, false
		}
	}
	return 13, total == 14
}

func baseOf(s tile.Suit) int {
	switch s {
	case tile.Character:
		return int(tile.M1)
	case tile.Circle:
		return int(tile.P1)
	case tile.Bamboo:
		return int(tile.S1)
	default:
		return -1
	}
}

func suukantsu(ctx Context) (int, bool) {
	return 13, ctx.Hand.KanCount() == 4
}
