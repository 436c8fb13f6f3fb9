package kernel

// IsPrime reports whether n is prime. Trial division by 2, 3 and the 6k+-1
// candidates; plenty for the conformance ranges this repo cares about.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for d := int64(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

// NthPrime returns the n-th prime, 1-indexed: NthPrime(1) == 2,
// NthPrime(25) == 97. n < 1 returns 0.
func NthPrime(n int64) int64 {
	if n < 1 {
		return 0
	}
	count := int64(0)
	for p := int64(2); ; p++ {
		if IsPrime(p) {
			count++
			if count == n {
				return p
			}
		}
	}
}
