// Package kernel provides the pure integer arithmetic kernels verified by the
// conformance harness: greatest common divisor in several forms plus the small
// sequence kernels (fibonacci, factorial, triangle sums, primes).
// Stdlib-only implementation. Every kernel is a total, deterministic function
// over int64 with no side effects; all are safe for concurrent use.
package kernel

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. The result is non-negative and divides both inputs;
// GCD(0, 0) is 0 by convention.
//
// Negative inputs are accepted: the remainder chain works unchanged (Go's %
// preserves the dividend's sign and strictly shrinks magnitude) and the sign
// is normalized afterwards. The one unrepresentable case is a mathematical
// GCD of 2^63 (e.g. GCD(math.MinInt64, 0)), which comes back as
// math.MinInt64 since int64 has no +2^63.
func GCD(a, b int64) int64 {
	// The (0,0) pair never enters the loop, so no modulo by zero is possible.
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a // no-op for MinInt64, see doc comment
	}
	return a
}

// BinaryGCD returns the same result as GCD via Stein's algorithm, which
// replaces division with shifts. Kept as an independent implementation so the
// conformance suites can cross-check two kernels against one oracle.
func BinaryGCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a < 0 || b < 0 {
		// MinInt64 survives negation; the shift loops need a true magnitude.
		return GCD(a, b)
	}
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	// Factor out the common power of two.
	var shift uint
	for (a|b)&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
	}
	for a&1 == 0 {
		a >>= 1
	}
	for b != 0 {
		for b&1 == 0 {
			b >>= 1
		}
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

// ExtGCD returns Bezout coefficients x, y and d = GCD(a, b) such that
// a*x + b*y == d. Follows Knuth's Algorithm E (TAOCP Vol 1, 4.5.2).
// d is non-negative and the Bezout identity holds for every input pair,
// including ExtGCD(0, 0) = (1, 0, 0).
func ExtGCD(a, b int64) (x, y, d int64) {
	x, y = 1, 0
	x1, y1 := int64(0), int64(1)
	d = a
	r := b
	for r != 0 {
		q := d / r
		d, r = r, d-q*r
		x, x1 = x1, x-q*x1
		y, y1 = y1, y-q*y1
	}
	if d < 0 {
		x, y, d = -x, -y, -d
	}
	return x, y, d
}

// LCM returns the least common multiple of a and b, non-negative, with
// LCM(x, 0) == 0. Dividing before multiplying keeps intermediate values
// within range whenever the true LCM fits in int64.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}
	return l
}
