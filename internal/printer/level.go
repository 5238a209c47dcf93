package printer

// level — приоритет контекста; выражение с меньшим приоритетом берётся в скобки.
type level int

const (
	lLowest level = iota
	lComma
	lSpread
	lYield
	lAssign
	lConditional
	lNullish
	lLogicalOr
	lLogicalAnd
	lBitOr
	lBitXor
	lBitAnd
	lEquals
	lCompare
	lShift
	lAdd
	lMultiply
	lExponent
	lPrefix
	lPostfix
	lNew
	lCall
	lMember
)

var binaryLevels = map[string]level{
	"??": lNullish,
	"||": lLogicalOr,
	"&&": lLogicalAnd,
	"|":  lBitOr,
	"^":  lBitXor,
	"&":  lBitAnd,
	"==": lEquals, "!=": lEquals, "===": lEquals, "!==": lEquals,
	"<": lCompare, ">": lCompare, "<=": lCompare, ">=": lCompare,
	"in": lCompare, "instanceof": lCompare,
	"<<": lShift, ">>": lShift, ">>>": lShift,
	"+": lAdd, "-": lAdd,
	"*": lMultiply, "/": lMultiply, "%": lMultiply,
	"**": lExponent,
}

func binaryLevel(op string) level {
	if l, ok := binaryLevels[op]; ok {
		return l
	}
	return lLowest
}

func isLogical(op string) bool {
	return op == "||" || op == "&&"
}
