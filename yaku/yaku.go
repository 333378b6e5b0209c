// Package yaku implements the scoring-pattern predicates and the aggregator
// that runs all of them against a won hand. Grounded on the teacher's
// YakuChecker/yakuCheckerFunc registry pattern in
// game/engines/mahjong/yaku.go — a slice of named function values rather
// than an interface hierarchy — generalized to the full predicate set
// scoring/check_1_han.rs through check_yakuman.rs define. Each entry carries
// a single English display name; there are no Japanese names, and open
// hands get no "(Open)" suffix on any name.
package yaku

import (
	"sort"

	"mahjong/analyzer"
	"mahjong/block"
	"mahjong/hand"
	"mahjong/tile"
)

// Situation carries everything about how the hand was won that cannot be
// read off the tiles themselves.
type Situation struct {
	Riichi        bool
	DoubleRiichi  bool
	Ippatsu       bool
	SelfPicked    bool // tsumo
	HaiteiTsumo   bool // won by self-draw on the last tile of the live wall
	HouteiRon     bool // won on the round's last discard
	RinshanKaihou bool // won on a replacement draw after a kan
	Chankan       bool // won by robbing another player's kan
	Dealer        bool
	FirstTurn     bool // no discards or calls have happened yet
	NagashiMangan bool // exhaustive draw won by an all-terminal-honor, never-claimed discard pile
	RoundWind     tile.Wind
	SeatWind      tile.Wind
}

// Context is the full input a predicate evaluates against: the raw hand,
// its winning decomposition, the winning tile, and the situational flags.
type Context struct {
	Hand      hand.Hand
	Analysis  analyzer.Analysis
	WinTile   tile.Type
	Situation Situation
}

// Open reports whether the hand has any meld that isn't a concealed kan —
// the shared "is this a closed hand" test almost every predicate needs.
func (c Context) Open() bool { return c.Hand.HasOpenMelds() }

// Predicate evaluates one scoring pattern, returning the han it contributes
// and whether it applies at all.
type Predicate func(Context) (han int, ok bool)

// Entry pairs a predicate with its display name and whether it is a
// yakuman-tier pattern (these exclude all non-yakuman entries when present).
type Entry struct {
	Name      string
	Predicate Predicate
	Yakuman   bool
}

// Found is one matched entry with its resolved han value.
type Found struct {
	Name    string
	Han     int
	Yakuman bool
}

// Registry is every predicate this package knows, in the same order as
// name.rs's Kind enum for the situational/shape entries it overlaps with.
var Registry = []Entry{
	{"double riichi", doubleRiichi, false},
	{"riichi", riichi, false},
	{"ippatsu", ippatsu, false},
	{"menzen tsumo", menzenTsumo, false},
	{"pinfu", pinfu, false},
	{"tanyao", tanyao, false},
	{"seven pairs", sevenPairs, false},
	{"yakuhai: white dragon", yakuhaiDragon(tile.White), false},
	{"yakuhai: green dragon", yakuhaiDragon(tile.Green), false},
	{"yakuhai: red dragon", yakuhaiDragon(tile.Red), false},
	{"yakuhai: seat wind", yakuhaiSeatWind, false},
	{"yakuhai: round wind", yakuhaiRoundWind, false},
	{"all terminals and honors", allTerminalsAndHonors, false},
	{"sanshoku doujun", sanshokuDoujun, false},
	{"ittsuu", ittsuu, false},
	{"chanta", chanta, false},
	{"junchan", junchan, false},
	{"toitoi", toitoi, false},
	{"sanankou", sanankou, false},
	{"sanshoku doukou", sanshokuDoukou, false},
	{"shousangen", shousangen, false},
	{"two identical sequences", ryanpeikou, false},
	{"honitsu", honitsu, false},
	{"chinitsu", chinitsu, false},
	{"haitei raoyue", haitei, false},
	{"houtei raoyui", houtei, false},
	{"rinshan kaihou", rinshan, false},
	{"chankan", chankan, false},
	{"sankantsu", sankantsu, false},
	{"nagashi mangan", nagashiMangan, false},
	{"kokushi musou", kokushiMusou, true},
	{"suuankou", suuankou, true},
	{"daisangen", daisangen, true},
	{"shousuushi", shousuushi, true},
	{"daisuushi", daisuushi, true},
	{"tsuuiisou", tsuuiisou, true},
	{"chinroutou", chinroutou, true},
	{"ryuuiisou", ryuuiisou, true},
	{"chuurenpoutou", chuurenpoutou, true},
	{"suukantsu", suukantsu, true},
	{"tenhou", tenhou, true},
	{"chiihou", chiihou, true},
}

// Evaluate runs every predicate and returns the matched entries: if any
// yakuman predicate matched, only yakuman entries are returned (a yakuman
// hand's value is never diluted by ordinary yaku); otherwise every matching
// non-yakuman entry is returned, sorted by han descending then name
// ascending, mirroring extract_yaku_list's ordering in the reference scorer.
func Evaluate(ctx Context) []Found {
	var found []Found
	hasYakuman := false
	for _, e := range Registry {
		han, ok := e.Predicate(ctx)
		if !ok {
			continue
		}
		found = append(found, Found{Name: e.Name, Han: han, Yakuman: e.Yakuman})
		if e.Yakuman {
			hasYakuman = true
		}
	}
	if hasYakuman {
		kept := found[:0]
		for _, f := range found {
			if f.Yakuman {
				kept = append(kept, f)
			}
		}
		found = kept
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].Han != found[j].Han {
			return found[i].Han > found[j].Han
		}
		return found[i].Name < found[j].Name
	})
	return found
}

// TotalHan sums every matched entry's han.
func TotalHan(found []Found) int {
	total := 0
	for _, f := range found {
		total += f.Han
	}
	return total
}

// allBlocks returns every block in the winning decomposition, concealed and
// called together — the shape most whole-hand predicates (tanyao, chanta,
// honitsu, ...) scan, since those don't care which blocks came from a call.
func allBlocks(a analyzer.Analysis) []block.Block {
	blocks := make([]block.Block, 0, len(a.Same3)+len(a.Sequential3)+len(a.Same2)+len(a.Sequential2)+len(a.Opened))
	blocks = append(blocks, a.Same3...)
	blocks = append(blocks, a.Sequential3...)
	blocks = append(blocks, a.Same2...)
	blocks = append(blocks, a.Sequential2...)
	blocks = append(blocks, a.Opened...)
	return blocks
}

// tripletBlocks returns every triplet in the decomposition, concealed
// (Same3) and called (a Pon/Kan entry in Opened) alike — used by yakuhai,
// shousangen/daisangen and shousuushi/daisuushi, which award on any
// triplet's identity regardless of whether it was called.
func tripletBlocks(a analyzer.Analysis) []block.Block {
	blocks := make([]block.Block, 0, len(a.Same3)+len(a.Opened))
	blocks = append(blocks, a.Same3...)
	for _, b := range a.Opened {
		if b.Kind == block.KindSame3 {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// runBlocks returns every run in the decomposition, concealed (Sequential3)
// and called (a Chi entry in Opened) alike — used by sanshoku doujun and
// ittsuu, which award on a run's numbers regardless of whether it was
// called.
func runBlocks(a analyzer.Analysis) []block.Block {
	blocks := make([]block.Block, 0, len(a.Sequential3)+len(a.Opened))
	blocks = append(blocks, a.Sequential3...)
	for _, b := range a.Opened {
		if b.Kind == block.KindSequential3 {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
