package yaku

func riichi(ctx Context) (int, bool) {
	if ctx.Situation.DoubleRiichi {
		return 0, false // double riichi supersedes plain riichi
	}
	return 1, ctx.Situation.Riichi
}

func doubleRiichi(ctx Context) (int, bool) {
	return 2, ctx.Situation.DoubleRiichi
}

func ippatsu(ctx Context) (int, bool) {
	return 1, ctx.Situation.Ippatsu && (ctx.Situation.Riichi || ctx.Situation.DoubleRiichi)
}

func menzenTsumo(ctx Context) (int, bool) {
	return 1, !ctx.Open() && ctx.Situation.SelfPicked
}

func haitei(ctx Context) (int, bool) {
	return 1, ctx.Situation.SelfPicked && ctx.Situation.HaiteiTsumo
}

func houtei(ctx Context) (int, bool) {
	return 1, !ctx.Situation.SelfPicked && ctx.Situation.HouteiRon
}

func rinshan(ctx Context) (int, bool) {
	return 1, ctx.Situation.SelfPicked && ctx.Situation.RinshanKaihou
}

func chankan(ctx Context) (int, bool) {
	return 1, !ctx.Situation.SelfPicked && ctx.Situation.Chankan
}

func tenhou(ctx Context) (int, bool) {
	return 13, ctx.Situation.Dealer && ctx.Situation.FirstTurn && ctx.Situation.SelfPicked && !ctx.Open()
}

func chiihou(ctx Context) (int, bool) {
	return 13, !ctx.Situation.Dealer && ctx.Situation.FirstTurn && ctx.Situation.SelfPicked && !ctx.Open()
}

// nagashiMangan is a flag-only pattern: the caller is responsible for
// setting Situation.NagashiMangan once it has confirmed the exhaustive-draw
// precondition (every discard was a terminal or honor and none was called),
// since that is a property of the whole discard pile across the round, not
// of the hand this package ever sees.
func nagashiMangan(ctx Context) (int, bool) {
	return 5, ctx.Situation.NagashiMangan
}
