package defaults

// Pair is a 2-tuple with positional fields.
//
// It is comparable when both element types are comparable.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// NewPair returns a Pair of the two values in order.
func NewPair[A any, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Triple is a 3-tuple with positional fields.
//
// It is comparable when all element types are comparable.
type Triple[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

// NewTriple returns a Triple of the three values in order.
func NewTriple[A any, B any, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}
