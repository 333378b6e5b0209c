// Package score turns an han total and a fu total into a scoring rank and
// the five payment amounts a dealer or non-dealer win produces. Ported from
// scoring/score.rs's calculate_score/determine_rank/calculate_base_points,
// reconciled with the teacher's separate-fields-per-payer style in
// game/engines/mahjong/score_calculator.go (dealerRon/dealerTsumo/etc.)
// rather than the Rust reference's single base-points-then-multiply
// approach left implicit in the caller.
package score

// Rank is the named scoring tier a hand falls into once han/fu (or a
// yakuman) are known.
type Rank uint8

const (
	Normal Rank = iota
	Mangan
	Haneman
	Baiman
	Sanbaiman
	Yakuman
)

func (r Rank) String() string {
	switch r {
	case Mangan:
		return "mangan"
	case Haneman:
		return "haneman"
	case Baiman:
		return "baiman"
	case Sanbaiman:
		return "sanbaiman"
	case Yakuman:
		return "yakuman"
	default:
		return "normal"
	}
}

// Payments is the full fan-out of points the winner collects under every
// possible payer combination; only the cells relevant to how the hand was
// actually won are meaningful to a given result, but all five are always
// computed since they're cheap and callers may want to display a table.
type Payments struct {
	DealerRon            int
	DealerTsumoPerPlayer int
	NonDealerRon         int
	NonDealerTsumoDealer int
	NonDealerTsumoOther  int
}

// Result is the final scoring verdict for one won hand.
type Result struct {
	Han      int
	Fu       int
	Rank     Rank
	Payments Payments
}

// DetermineRank implements the rank thresholds from spec.md §4.7: any
// yakuman-level yaku (han >= 13) always wins regardless of fu; otherwise
// thresholds climb by han, with two fu-gated exceptions at han 3 and 4.
func DetermineRank(han, fu int, hasYakuman bool) Rank {
	switch {
	case hasYakuman || han >= 13:
		return Yakuman
	case han >= 11:
		return Sanbaiman
	case han >= 8:
		return Baiman
	case han >= 6:
		return Haneman
	case han >= 5:
		return Mangan
	case han == 4 && fu >= 30:
		return Mangan
	case han == 3 && fu >= 60:
		return Mangan
	default:
		return Normal
	}
}

func roundUpTo100(points int) int { return (points + 99) / 100 * 100 }

// basePoints computes the pre-multiplier base points for a rank. Normal
// hands use the doubling formula fu * 2^(han+2), capped at the Mangan base
// of 2000; every higher rank is a fixed constant.
func basePoints(han, fu int, rank Rank) int {
	switch rank {
	case Yakuman:
		return 8000
	case Sanbaiman:
		return 6000
	case Baiman:
		return 4000
	case Haneman:
		return 3000
	case Mangan:
		return 2000
	default:
		base := fu << uint(han+2)
		if base > 2000 {
			base = 2000
		}
		return base
	}
}

// Calculate produces the full Result for a hand worth han and fu points,
// where hasYakuman marks that a 13-han-or-above yaku was present (forcing
// the Yakuman rank even if, unusually, a lower han total were passed in).
func Calculate(han, fu int, hasYakuman bool) Result {
	rank := DetermineRank(han, fu, hasYakuman)
	base := basePoints(han, fu, rank)

	return Result{
		Han:  han,
		Fu:   fu,
		Rank: rank,
		Payments: Payments{
			DealerRon:            roundUpTo100(base * 6),
			DealerTsumoPerPlayer: roundUpTo100(base * 2),
			NonDealerRon:         roundUpTo100(base * 4),
			NonDealerTsumoDealer: roundUpTo100(base * 2),
			NonDealerTsumoOther:  roundUpTo100(base),
		},
	}
}
