package analyzer

import (
	"testing"

	"mahjong/hand"
	"mahjong/tile"
)

func summaryOf(s string) tile.Summary {
	return hand.Parse(s).Summary()
}

func TestAnalyzeCompleteStandardHand(t *testing.T) {
	a := Analyze(summaryOf("123m456p789s123s55z"))
	if a.Shanten != -1 {
		t.Fatalf("shanten = %d, want -1", a.Shanten)
	}
	if a.Form != Normal {
		t.Fatalf("form = %v, want Normal", a.Form)
	}
	if len(a.Sequential3) != 4 || len(a.Same2) != 1 {
		t.Fatalf("decomposition = %+v", a)
	}
}

func TestAnalyzeTenpaiTankiWait(t *testing.T) {
	a := Analyze(summaryOf("123m456p789s123s5z"))
	if a.Shanten != 0 {
		t.Fatalf("shanten = %d, want 0", a.Shanten)
	}
	if len(a.Single) != 1 || a.Single[0] != tile.Z5 {
		t.Fatalf("single = %v, want [Z5]", a.Single)
	}
}

func TestAnalyzeSevenPairsComplete(t *testing.T) {
	s := summaryOf("11223344556677m")
	a := analyzeSevenPairs(s)
	if a.Shanten != -1 {
		t.Fatalf("shanten = %d, want -1", a.Shanten)
	}
	if len(a.Same2) != 7 {
		t.Fatalf("got %d pairs, want 7", len(a.Same2))
	}
}

func TestAnalyzeSevenPairsPenalizesFourOfAKind(t *testing.T) {
	// Four of one tile counts as one kind and one pair, not two — the
	// second copy of the duplicated pair can't stand in for a distinct one.
	s := summaryOf("1111223344556m")
	a := analyzeSevenPairs(s)
	full := analyzeSevenPairs(summaryOf("1122334455667m"))
	if a.Shanten <= full.Shanten {
		t.Fatalf("four-of-a-kind hand shanten %d should be worse than %d", a.Shanten, full.Shanten)
	}
}

func TestAnalyzeThirteenOrphansTenpai(t *testing.T) {
	a := analyzeThirteenOrphans(summaryOf("19m19p11s1234567z"))
	if a.Shanten != 0 {
		t.Fatalf("shanten = %d, want 0", a.Shanten)
	}
}

func TestAnalyzeThirteenOrphansComplete(t *testing.T) {
	a := analyzeThirteenOrphans(summaryOf("19m19p19s1234567z1z"))
	if a.Shanten != -1 {
		t.Fatalf("shanten = %d, want -1", a.Shanten)
	}
}

func TestAnalyzeHandSeparatesCalledMeldsFromConcealed(t *testing.T) {
	h := hand.Parse("456p789s123s5z 111m 5z")
	a := AnalyzeHand(h)
	if a.Shanten != -1 {
		t.Fatalf("shanten = %d, want -1", a.Shanten)
	}
	if len(a.Opened) != 1 || a.Opened[0].First() != tile.M1 {
		t.Fatalf("opened = %+v, want a single M1 triplet", a.Opened)
	}
	for _, b := range a.Same3 {
		if b.First() == tile.M1 {
			t.Fatalf("called meld leaked into Same3: %+v", a.Same3)
		}
	}
}

func TestNormalBeatsSevenPairsAtWin(t *testing.T) {
	// Six pairs that line up as two pairs of identical runs (123m twice,
	// 123p twice) plus a distinct pair read as a complete normal hand
	// before they read as seven pairs,
	// even though both grammars might otherwise tie.
	a := Analyze(summaryOf("112233m112233p55s"))
	if a.Shanten != -1 || a.Form != Normal {
		t.Fatalf("got shanten=%d form=%v, want -1/Normal", a.Shanten, a.Form)
	}
}
