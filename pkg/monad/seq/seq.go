package seq

// Unit wraps a single value into a one-element slice.
func Unit[T any](v T) []T {
	return []T{v}
}

// Bind applies f to every element and flattens the results, preserving
// input order (flatMap).
func Bind[In, Out any](xs []In, f func(v In) []Out) []Out {
	out := make([]Out, 0, len(xs))
	for _, v := range xs {
		out = append(out, f(v)...)
	}
	return out
}

// Map transforms every element.
func Map[In, Out any](xs []In, f func(v In) Out) []Out {
	return Bind(xs, func(v In) []Out {
		return Unit(f(v))
	})
}

// Filter keeps the elements for which keep holds.
func Filter[T any](xs []T, keep func(v T) bool) []T {
	return Bind(xs, func(v T) []T {
		if keep(v) {
			return Unit(v)
		}
		return nil
	})
}

// Pair is an ordered two-tuple, used by Product.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Product returns the cartesian product of as and bs in row-major order:
// all pairs for as[0] first, then as[1], and so on.
func Product[A, B any](as []A, bs []B) []Pair[A, B] {
	return Bind(as, func(a A) []Pair[A, B] {
		return Map(bs, func(b B) Pair[A, B] {
			return Pair[A, B]{First: a, Second: b}
		})
	})
}
