// Package fu computes the itemized minor-point (fu) breakdown of a won
// hand. Ported directly from scoring/fu.rs in the original implementation —
// the teacher's own calculateFu in game/engines/mahjong/score_calculator.go
// is a stub that always returns 30, so it gives no shape worth keeping here;
// the itemization below follows the Rust reference's item order and rounding
// rules instead, expressed in the teacher's style of small named helper
// functions over a shared context struct.
package fu

import (
	"mahjong/analyzer"
	"mahjong/block"
	"mahjong/tile"
)

// Detail is one named contribution to the total, e.g. "closed triplet (2s)".
type Detail struct {
	Name string
	Fu   int
}

// Result is the itemized fu breakdown plus its rounded total.
type Result struct {
	Total   int
	Details []Detail
}

// Context is everything the calculator needs beyond the block decomposition
// itself: who won, how, and on which tile.
type Context struct {
	Analysis   analyzer.Analysis
	WinTile    tile.Type
	SelfPicked bool // tsumo
	Open       bool // any called meld other than a concealed kan
	RoundWind  tile.Wind
	SeatWind   tile.Wind
	KanSources map[tile.Type]KanSource // tile -> how its kan was formed
}

// KanSource distinguishes a concealed (self-drawn) kan from a claimed one,
// each worth four times the fu of the equivalent open/closed triplet.
type KanSource uint8

const (
	KanOpen KanSource = iota
	KanConcealed
)

func roundUpTo10(n int) int { return (n + 9) / 10 * 10 }

// Calculate returns the itemized fu for a completed hand. Seven pairs and
// thirteen orphans use fixed totals; the standard grammar itemizes base
// points, triplet/kan fu, the pair, the wait shape, tsumo, and the concealed
// ron menzen bonus, then applies the pinfu-tsumo and open-pinfu-ron special
// cases before rounding up to the nearest 10.
func Calculate(ctx Context) Result {
	switch ctx.Analysis.Form {
	case analyzer.SevenPairs:
		return Result{Total: 25, Details: []Detail{{"seven pairs", 25}}}
	case analyzer.ThirteenOrphans:
		return Result{Total: 30, Details: []Detail{{"thirteen orphans", 30}}}
	}

	var details []Detail
	add := func(name string, fu int) {
		if fu != 0 {
			details = append(details, Detail{name, fu})
		}
	}

	add("base", 20)
	raw := 20
	raw += mentsuFu(ctx, add)
	raw += jantouFu(ctx, add)
	raw += machiFu(ctx, add)
	if ctx.SelfPicked {
		add("tsumo", 2)
		raw += 2
	}
	if !ctx.Open && !ctx.SelfPicked {
		add("concealed ron", 10)
		raw += 10
	}

	if isPinfuShape(ctx) && ctx.SelfPicked {
		return Result{Total: 20, Details: []Detail{{"pinfu tsumo", 20}}}
	}
	if raw == 20 && !ctx.SelfPicked && ctx.Open {
		return Result{Total: 30, Details: []Detail{{"open pinfu-shape ron", 30}}}
	}
	return Result{Total: roundUpTo10(raw), Details: details}
}

func triplettFuValue(b block.Block, concealed bool) int {
	terminalOrHonor := b.HasTerminalOrHonor()
	switch {
	case concealed && terminalOrHonor:
		return 8
	case concealed:
		return 4
	case terminalOrHonor:
		return 4
	default:
		return 2
	}
}

func mentsuFu(ctx Context, add func(string, int)) int {
	total := 0
	for _, b := range ctx.Analysis.Same3 {
		t := b.First()
		if src, isKan := ctx.KanSources[t]; isKan {
			terminalOrHonor := b.HasTerminalOrHonor()
			var fu int
			switch {
			case src == KanConcealed && terminalOrHonor:
				fu = 32
			case src == KanConcealed:
				fu = 16
			case terminalOrHonor:
				fu = 16
			default:
				fu = 8
			}
			add(kanLabel(t), fu)
			total += fu
			continue
		}
		// A triplet completed by ron on the winning tile is treated as an
		// open triplet for fu purposes even though the decomposition has no
		// separate "open" tag for it, since the claimed tile effectively
		// made the set from the outside.
		concealed := !ctx.Open
		if !ctx.SelfPicked && t == ctx.WinTile {
			concealed = false
		}
		fu := triplettFuValue(b, concealed)
		add(tripletLabel(t, concealed), fu)
		total += fu
	}
	// Called Pon/Kan triplets are always open; a called Chi contributes no
	// mentsu fu at all.
	for _, b := range ctx.Analysis.Opened {
		if b.Kind != block.KindSame3 {
			continue
		}
		t := b.First()
		if src, isKan := ctx.KanSources[t]; isKan {
			terminalOrHonor := b.HasTerminalOrHonor()
			fu := 8
			if src == KanConcealed {
				fu = 16
			}
			if terminalOrHonor {
				fu *= 2
			}
			add(kanLabel(t), fu)
			total += fu
			continue
		}
		fu := triplettFuValue(b, false)
		add(tripletLabel(t, false), fu)
		total += fu
	}
	return total
}

func tripletLabel(t tile.Type, concealed bool) string {
	if concealed {
		return "closed triplet (" + t.String() + ")"
	}
	return "open triplet (" + t.String() + ")"
}

func kanLabel(t tile.Type) string { return "kan (" + t.String() + ")" }

func jantouFu(ctx Context, add func(string, int)) int {
	if len(ctx.Analysis.Same2) == 0 {
		return 0
	}
	pair := ctx.Analysis.Same2[0].First()
	fu := 0
	if d, ok := tile.AsDragon(pair); ok {
		_ = d
		fu += 2
	}
	if w, ok := tile.AsWind(pair); ok {
		if w == ctx.SeatWind {
			fu += 2
		}
		if w == ctx.RoundWind {
			fu += 2
		}
	}
	add("pair", fu)
	return fu
}

func machiFu(ctx Context, add func(string, int)) int {
	// Tanki (single-wait): the winning tile completes the pair. A complete
	// hand's decomposition has no leftover singles to cross-check against —
	// all 14 tiles are already consumed into melds and the pair — so the
	// pair match alone identifies the wait.
	if len(ctx.Analysis.Same2) > 0 && ctx.Analysis.Same2[0].First() == ctx.WinTile {
		add("tanki wait", 2)
		return 2
	}
	for _, b := range ctx.Analysis.Sequential3 {
		if b.Tiles[1] == ctx.WinTile {
			add("closed wait", 2) // kanchan: winning tile is the run's middle tile
			return 2
		}
		if b.Tiles[2] == ctx.WinTile && tile.Number(b.Tiles[0]) == 1 {
			add("edge wait", 2) // penchan: 1-2 waiting on 3
			return 2
		}
		if b.Tiles[0] == ctx.WinTile && tile.Number(b.Tiles[2]) == 9 {
			add("edge wait", 2) // penchan: 8-9 waiting on 7
			return 2
		}
	}
	return 0
}

// isPinfuShape reports the no-points-hand shape used by the pinfu-tsumo fu
// special case: closed, standard grammar, four runs, a non-yakuhai pair, and
// a two-sided wait. This mirrors — but is independent of — the pinfu yaku
// predicate itself; the fu calculator needs its own minimal check since it
// runs before any yaku has been evaluated.
func isPinfuShape(ctx Context) bool {
	a := ctx.Analysis
	if ctx.Open || a.Form != analyzer.Normal {
		return false
	}
	if len(a.Sequential3) != 4 || len(a.Same2) != 1 {
		return false
	}
	pair := a.Same2[0].First()
	if _, ok := tile.AsDragon(pair); ok {
		return false
	}
	if w, ok := tile.AsWind(pair); ok && (w == ctx.SeatWind || w == ctx.RoundWind) {
		return false
	}
	for _, b := range a.Sequential3 {
		if b.Tiles[0] == ctx.WinTile && tile.Number(b.Tiles[0]) != 7 {
			return true
		}
		if b.Tiles[2] == ctx.WinTile && tile.Number(b.Tiles[2]) != 3 {
			return true
		}
	}
	return false
}
