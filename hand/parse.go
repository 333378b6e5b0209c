package hand

import (
	"strings"

	"mahjong/tile"
)

// parseGroup turns one whitespace-delimited group (an interleaving of digits
// and suit letters) into tiles, flushing pending digits whenever a suit
// letter is seen — so "1m2m3m" and "123m" parse identically. Unrecognized
// characters and illegal honors (z8, z9) are silently dropped, per spec.md
// §4.1's "no errors raised" rule.
func parseGroup(group string) []tile.Type {
	var tiles []tile.Type
	var pending []byte
	for i := 0; i < len(group); i++ {
		c := group[i]
		switch {
		case c >= '1' && c <= '9':
			pending = append(pending, c)
		case c == 'm' || c == 'p' || c == 's' || c == 'z':
			for _, d := range pending {
				if t, ok := tile.FromDigitSuit(d, c); ok {
					tiles = append(tiles, t)
				}
			}
			pending = pending[:0]
		}
	}
	return tiles
}

// Parse reads the grammar from spec.md §6: whitespace-separated groups,
// first group is the concealed hand, each subsequent group is either a
// single drawn/winning tile (1 tile), a called Pon/Chi (3 tiles, Pon iff all
// three tiles are equal), or a called Kan (4 tiles, only 3 stored). Called
// melds parsed this way have Source == Unknown; callers that know the real
// source seat should set it afterward.
func Parse(s string) Hand {
	groups := strings.Fields(s)
	if len(groups) == 0 {
		return Hand{}
	}
	concealed := parseGroup(groups[0])
	h := Hand{Concealed: concealed}

	for _, g := range groups[1:] {
		tiles := parseGroup(g)
		switch len(tiles) {
		case 1:
			t := tiles[0]
			h.Drawn = &t
		case 3:
			category := Chi
			if tiles[0] == tiles[1] && tiles[1] == tiles[2] {
				category = Pon
			}
			h.Called = append(h.Called, CalledMeld{
				Tiles:    [3]tile.Type{tiles[0], tiles[1], tiles[2]},
				Category: category,
				Source:   Unknown,
			})
		case 4:
			h.Called = append(h.Called, CalledMeld{
				Tiles:    [3]tile.Type{tiles[0], tiles[1], tiles[2]},
				Category: Kan,
				Source:   Unknown,
			})
		}
	}
	return h
}
