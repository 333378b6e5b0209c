package fu

import (
	"testing"

	"mahjong/analyzer"
	"mahjong/hand"
	"mahjong/tile"
)

func detailFu(result Result, name string) (int, bool) {
	for _, d := range result.Details {
		if d.Name == name {
			return d.Fu, true
		}
	}
	return 0, false
}

func TestTankiWaitAwardsFu(t *testing.T) {
	h := hand.Parse("123m456p789s123s5z 5z")
	a := analyzer.AnalyzeHand(h)
	result := Calculate(Context{Analysis: a, WinTile: tile.Z5})
	if fu, ok := detailFu(result, "tanki wait"); !ok || fu != 2 {
		t.Fatalf("tanki wait fu = (%d,%v), want (2,true); details=%+v", fu, ok, result.Details)
	}
}

func TestCalledTripletPricedAsOpen(t *testing.T) {
	h := hand.Parse("456m789s123s55z 555p")
	a := analyzer.AnalyzeHand(h)
	result := Calculate(Context{Analysis: a, WinTile: tile.M4})
	if fu, ok := detailFu(result, "open triplet (5p)"); !ok || fu != 2 {
		t.Fatalf("open triplet fu = (%d,%v), want (2,true); details=%+v", fu, ok, result.Details)
	}
	for _, b := range a.Same3 {
		if b.First() == tile.P5 {
			t.Fatalf("called triplet leaked into Same3: %+v", a.Same3)
		}
	}
}
