package score

import "testing"

func TestMangan(t *testing.T) {
	r := Calculate(5, 30, false)
	if r.Rank != Mangan {
		t.Fatalf("rank = %v, want Mangan", r.Rank)
	}
	if r.Payments.NonDealerRon != 8000 {
		t.Fatalf("non-dealer ron = %d, want 8000", r.Payments.NonDealerRon)
	}
	if r.Payments.DealerRon != 12000 {
		t.Fatalf("dealer ron = %d, want 12000", r.Payments.DealerRon)
	}
}

func TestHanemanBaimanSanbaimanYakuman(t *testing.T) {
	cases := []struct {
		han, fu       int
		wantNonDealer int
	}{
		{6, 30, 12000},
		{8, 30, 16000},
		{11, 30, 24000},
		{13, 30, 32000},
	}
	for _, c := range cases {
		r := Calculate(c.han, c.fu, false)
		if r.Payments.NonDealerRon != c.wantNonDealer {
			t.Fatalf("han=%d fu=%d non-dealer ron = %d, want %d", c.han, c.fu, r.Payments.NonDealerRon, c.wantNonDealer)
		}
	}
}

func TestFuGatedManganPromotion(t *testing.T) {
	if rank := DetermineRank(4, 30, false); rank != Mangan {
		t.Fatalf("4han30fu rank = %v, want Mangan", rank)
	}
	if rank := DetermineRank(3, 60, false); rank != Mangan {
		t.Fatalf("3han60fu rank = %v, want Mangan", rank)
	}
	if rank := DetermineRank(4, 25, false); rank != Normal {
		t.Fatalf("4han25fu rank = %v, want Normal", rank)
	}
}

func TestNormalRankDoublingFormula(t *testing.T) {
	cases := []struct {
		han, fu       int
		wantNonDealer int
	}{
		{1, 30, 1000},
		{1, 40, 1300},
		{2, 30, 2000},
		{3, 30, 3900},
	}
	for _, c := range cases {
		r := Calculate(c.han, c.fu, false)
		if r.Payments.NonDealerRon != c.wantNonDealer {
			t.Fatalf("han=%d fu=%d non-dealer ron = %d, want %d", c.han, c.fu, r.Payments.NonDealerRon, c.wantNonDealer)
		}
	}
}

func TestSevenPairsManganPromotion(t *testing.T) {
	r := Calculate(4, 25, false)
	if r.Rank != Normal {
		t.Fatalf("rank = %v, want Normal", r.Rank)
	}
	if r.Payments.NonDealerRon != 6400 {
		t.Fatalf("non-dealer ron = %d, want 6400", r.Payments.NonDealerRon)
	}
}

func TestPinfuTsumo(t *testing.T) {
	r := Calculate(2, 20, false)
	if r.Payments.NonDealerTsumoDealer != 700 {
		t.Fatalf("non-dealer tsumo (dealer pays) = %d, want 700", r.Payments.NonDealerTsumoDealer)
	}
	if r.Payments.NonDealerTsumoOther != 400 {
		t.Fatalf("non-dealer tsumo (others pay) = %d, want 400", r.Payments.NonDealerTsumoOther)
	}
}

func TestYakumanForcedByFlag(t *testing.T) {
	r := Calculate(1, 30, true)
	if r.Rank != Yakuman {
		t.Fatalf("rank = %v, want Yakuman", r.Rank)
	}
	if r.Payments.NonDealerRon != 32000 || r.Payments.DealerRon != 48000 {
		t.Fatalf("payments = %+v", r.Payments)
	}
}
