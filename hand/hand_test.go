package hand

import (
	"testing"

	"mahjong/tile"
)

func TestParseConcealedAndDrawn(t *testing.T) {
	h := Parse("123m456p789s1112z 2z")
	if len(h.Concealed) != 13 {
		t.Fatalf("got %d concealed tiles, want 13", len(h.Concealed))
	}
	if h.Drawn == nil || *h.Drawn != tile.Z2 {
		t.Fatalf("drawn tile = %v, want Z2", h.Drawn)
	}
}

func TestParseChi(t *testing.T) {
	h := Parse("123m456p1115z 789s 5z")
	if len(h.Called) != 1 || h.Called[0].Category != Chi {
		t.Fatalf("expected one Chi meld, got %+v", h.Called)
	}
	if h.Called[0].Tiles != [3]tile.Type{tile.S7, tile.S8, tile.S9} {
		t.Fatalf("chi tiles = %v", h.Called[0].Tiles)
	}
}

func TestParsePon(t *testing.T) {
	h := Parse("123m456p789s5z 111z 5z")
	if len(h.Called) != 1 || h.Called[0].Category != Pon {
		t.Fatalf("expected one Pon meld, got %+v", h.Called)
	}
}

func TestParseKan(t *testing.T) {
	h := Parse("123m456p789s5z 1111z 5z")
	if len(h.Called) != 1 || h.Called[0].Category != Kan {
		t.Fatalf("expected one Kan meld, got %+v", h.Called)
	}
}

func TestParseDropsIllegalHonors(t *testing.T) {
	tiles := parseGroup("123m456p789s1234z")
	if len(tiles) != 13 {
		t.Fatalf("got %d tiles, want 13 (z8/z9 never appear here anyway)", len(tiles))
	}
	dropped := parseGroup("8z9z1z")
	if len(dropped) != 1 || dropped[0] != tile.Z1 {
		t.Fatalf("expected only Z1 to survive, got %v", dropped)
	}
}

func TestSummaryConservation(t *testing.T) {
	h := Parse("123m456p789s5z 1111z 5z")
	s := h.Summary()
	if got, want := s.Total(), 10+4+1; got != want {
		t.Fatalf("summary total = %d, want %d", got, want)
	}
}
