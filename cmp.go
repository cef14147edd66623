package ratio

// Cmp is the result of comparing two ratios by value.
type Cmp int

const (
	Less    Cmp = -1
	Equal   Cmp = 0
	Greater Cmp = 1
)

// Cmp compares r and o by value: r.Num*o.Div against o.Num*r.Div.
// The cross products are formed in 64 bits and cannot overflow.
//
// Cmp is not consistent with ==: Ratio{1, 2} != Ratio{2, 4}, yet they
// compare Equal. A ratio with a zero Div compares Equal to every other
// ratio with a zero Div, and Undefined compares Equal to everything.
func (r Ratio) Cmp(o Ratio) Cmp {
	a := uint64(r.Num) * uint64(o.Div)
	b := uint64(o.Num) * uint64(r.Div)
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// Compare returns -1, 0 or +1 and can be passed to slices.SortFunc.
func Compare(a, b Ratio) int {
	return int(a.Cmp(b))
}

func (c Cmp) Eq() bool {
	return c == Equal
}

func (c Cmp) Lt() bool {
	return c == Less
}

func (c Cmp) Gt() bool {
	return c == Greater
}

func (c Cmp) Leq() bool {
	return c != Greater
}

func (c Cmp) Geq() bool {
	return c != Less
}

func (c Cmp) String() string {
	switch c {
	case Less:
		return "<"
	case Greater:
		return ">"
	default:
		return "="
	}
}
