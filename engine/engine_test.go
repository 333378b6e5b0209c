package engine

import (
	"testing"

	"mahjong/hand"
	"mahjong/tile"
	"mahjong/yaku"
)

func TestEvaluatePinfuTsumoScoresTwoHan(t *testing.T) {
	h := hand.Parse("23m567p789s456s33m 4m")
	win := tile.M4
	result := Evaluate(Request{
		Hand:      h,
		WinTile:   win,
		Situation: yaku.Situation{SelfPicked: true},
	})
	if result.Score == nil {
		t.Fatalf("expected a complete, yaku-bearing hand to score")
	}
	if result.Fu.Total != 20 {
		t.Fatalf("fu = %d, want 20 (pinfu tsumo)", result.Fu.Total)
	}
	if result.Score.Han != 2 {
		t.Fatalf("han = %d, want 2 (menzen tsumo + pinfu)", result.Score.Han)
	}
}

func TestEvaluateIncompleteHandHasNoScore(t *testing.T) {
	h := hand.Parse("23m567p789s456s33m")
	result := Evaluate(Request{Hand: h, WinTile: tile.M4})
	if result.Score != nil {
		t.Fatalf("an incomplete 13-tile hand should not score")
	}
}
