// Package engine is the facade that runs a parsed hand through analysis,
// yaku evaluation, fu calculation, and scoring in one call. Grounded on the
// teacher's top-level orchestration in
// game/engines/mahjong/score_calculator.go's callHuPoints, which is the one
// place that wires the analyzer, the yaku checks, and the point table
// together for a caller that just wants a final verdict.
package engine

import (
	"mahjong/analyzer"
	"mahjong/fu"
	"mahjong/hand"
	"mahjong/score"
	"mahjong/tile"
	"mahjong/yaku"
)

// Request is everything needed to evaluate one hand: the parsed hand
// itself, the winning tile, and the situational context the yaku and fu
// layers both need.
type Request struct {
	Hand      hand.Hand
	WinTile   tile.Type
	Situation yaku.Situation
	// KanSources maps a called kan's tile to how it was formed, needed by
	// the fu calculator to tell a concealed kan from a claimed one.
	KanSources map[tile.Type]fu.KanSource
}

// Result is the full verdict for a hand: its shanten/decomposition, the
// matched yaku, the fu breakdown, and the final score. Score is nil when
// the hand isn't complete (Analysis.Shanten != -1) or matched no yaku at
// all — an otherwise-complete hand without a yaku cannot be declared a win.
type Result struct {
	Analysis analyzer.Analysis
	Yaku     []yaku.Found
	Fu       fu.Result
	Score    *score.Result
}

// Evaluate runs the full pipeline against req.
func Evaluate(req Request) Result {
	a := analyzer.AnalyzeHand(req.Hand)

	yakuCtx := yaku.Context{
		Hand:      req.Hand,
		Analysis:  a,
		WinTile:   req.WinTile,
		Situation: req.Situation,
	}
	found := yaku.Evaluate(yakuCtx)

	fuCtx := fu.Context{
		Analysis:   a,
		WinTile:    req.WinTile,
		SelfPicked: req.Situation.SelfPicked,
		Open:       yakuCtx.Open(),
		RoundWind:  req.Situation.RoundWind,
		SeatWind:   req.Situation.SeatWind,
		KanSources: req.KanSources,
	}
	fuResult := fu.Calculate(fuCtx)

	result := Result{Analysis: a, Yaku: found, Fu: fuResult}
	if a.Shanten != -1 || len(found) == 0 {
		return result
	}

	hasYakuman := false
	for _, f := range found {
		if f.Yakuman {
			hasYakuman = true
			break
		}
	}
	han := yaku.TotalHan(found)
	s := score.Calculate(han, fuResult.Total, hasYakuman)
	result.Score = &s
	return result
}
