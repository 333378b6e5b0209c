package yaku

import (
	"testing"

	"mahjong/analyzer"
	"mahjong/hand"
	"mahjong/tile"
)

func contextFor(s string, sit Situation) Context {
	h := hand.Parse(s)
	summary := h.Summary()
	a := analyzer.Analyze(summary)
	win := tile.Type(0)
	if h.Drawn != nil {
		win = *h.Drawn
	}
	return Context{Hand: h, Analysis: a, WinTile: win, Situation: sit}
}

func TestPinfuRequiresTwoSidedWait(t *testing.T) {
	// A clean ryanmen wait: 234m 567p 789s 456s + 33m pair, won on 4m
	// completing 234m from a 23m two-sided wait (1m/4m) held before the
	// draw.
	ctx := contextFor("23m567p789s456s33m 4m", Situation{})
	if han, ok := pinfu(ctx); !ok || han != 1 {
		t.Fatalf("pinfu = (%d,%v), want (1,true)", han, ok)
	}
}

func TestPinfuRejectsYakuhaiPair(t *testing.T) {
	ctx := contextFor("234m567p789s456s5z 5z", Situation{})
	if _, ok := pinfu(ctx); ok {
		t.Fatalf("pinfu should not apply with a dragon pair")
	}
}

func TestTanyaoRejectsTerminal(t *testing.T) {
	ctx := contextFor("123m456p789s456s5p 5p", Situation{})
	if _, ok := tanyao(ctx); ok {
		t.Fatalf("tanyao should reject a hand containing 123m")
	}
}

func TestTanyaoAcceptsAllSimples(t *testing.T) {
	ctx := contextFor("234m567p345s456s5p 5p", Situation{})
	if han, ok := tanyao(ctx); !ok || han != 1 {
		t.Fatalf("tanyao = (%d,%v), want (1,true)", han, ok)
	}
}

func contextForHand(h hand.Hand, win tile.Type, sit Situation) Context {
	return Context{Hand: h, Analysis: analyzer.AnalyzeHand(h), WinTile: win, Situation: sit}
}

func TestSevenPairsAwardsTwoHan(t *testing.T) {
	ctx := contextFor("1122m3344p5566s7z 7z", Situation{})
	if han, ok := sevenPairs(ctx); !ok || han != 2 {
		t.Fatalf("sevenPairs = (%d,%v), want (2,true)", han, ok)
	}
}

func TestRyanpeikouRequiresTwoEqualRunPairs(t *testing.T) {
	ctx := contextFor("112233m456456p7z 7z", Situation{})
	if han, ok := ryanpeikou(ctx); !ok || han != 3 {
		t.Fatalf("ryanpeikou = (%d,%v), want (3,true)", han, ok)
	}
}

func TestRyanpeikouRejectsSingleRepeatedRun(t *testing.T) {
	ctx := contextFor("112233m456p789s7z 7z", Situation{})
	if _, ok := ryanpeikou(ctx); ok {
		t.Fatalf("ryanpeikou should not fire with only one repeated run")
	}
}

func TestAllTerminalsAndHonorsRequiresBothKinds(t *testing.T) {
	h := hand.Parse("111m999p111s111z99s")
	ctx := contextForHand(h, tile.S9, Situation{})
	if han, ok := allTerminalsAndHonors(ctx); !ok || han != 2 {
		t.Fatalf("allTerminalsAndHonors = (%d,%v), want (2,true)", han, ok)
	}
}

func TestAllTerminalsAndHonorsRejectsPureHonor(t *testing.T) {
	h := hand.Parse("111z222z333z444z55z")
	ctx := contextForHand(h, tile.Z5, Situation{})
	if _, ok := allTerminalsAndHonors(ctx); ok {
		t.Fatalf("an all-honor hand should score as tsuuiisou, not honroutou")
	}
}

func TestAllTerminalsAndHonorsRejectsPureTerminal(t *testing.T) {
	h := hand.Parse("111m999p111s999s99m")
	ctx := contextForHand(h, tile.M9, Situation{})
	if _, ok := allTerminalsAndHonors(ctx); ok {
		t.Fatalf("an all-terminal hand should score as chinroutou, not honroutou")
	}
}

func TestNagashiManganIsFlagOnly(t *testing.T) {
	ctx := Context{Situation: Situation{NagashiMangan: true}}
	if han, ok := nagashiMangan(ctx); !ok || han != 5 {
		t.Fatalf("nagashiMangan = (%d,%v), want (5,true)", han, ok)
	}
	ctx.Situation.NagashiMangan = false
	if _, ok := nagashiMangan(ctx); ok {
		t.Fatalf("nagashiMangan should not fire without the flag")
	}
}

func TestYakuhaiAwardsOnCalledDragonTriplet(t *testing.T) {
	h := hand.Parse("456p789s123s1z 555z 1z")
	ctx := contextForHand(h, tile.Z1, Situation{})
	if han, ok := yakuhaiDragon(tile.White)(ctx); !ok || han != 1 {
		t.Fatalf("yakuhaiDragon(white) = (%d,%v), want (1,true)", han, ok)
	}
}

func TestToitoiCountsCalledTriplet(t *testing.T) {
	h := hand.Parse("111p222s333s33m 555z")
	ctx := contextForHand(h, tile.M3, Situation{})
	if han, ok := toitoi(ctx); !ok || han != 2 {
		t.Fatalf("toitoi = (%d,%v), want (2,true)", han, ok)
	}
}

func TestKokushiMusou(t *testing.T) {
	ctx := contextFor("19m19p19s1234567z1z", Situation{})
	if han, ok := kokushiMusou(ctx); !ok || han != 13 {
		t.Fatalf("kokushi = (%d,%v), want (13,true)", han, ok)
	}
}

func TestEvaluateYakumanExclusivity(t *testing.T) {
	ctx := contextFor("19m19p19s1234567z1z", Situation{SelfPicked: true})
	found := Evaluate(ctx)
	for _, f := range found {
		if !f.Yakuman {
			t.Fatalf("non-yakuman entry %q present alongside kokushi", f.Name)
		}
	}
	if len(found) == 0 {
		t.Fatalf("expected kokushi to be found")
	}
}
