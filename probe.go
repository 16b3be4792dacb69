package qtable

// Quadratic probing constants. The probe offset for attempt i is c1*i + c2*i*i.
const (
	c1 = 0
	c2 = 1
)

// Hash returns the home slot of key in a table with the given capacity.
// capacity must be positive.
func Hash(key, capacity int) int {
	return key % capacity
}

// Probe returns the slot visited on attempt i of the probe sequence that
// starts at index.
func Probe(index, i, capacity int) int {
	return (index + c1*i + c2*i*i) % capacity
}

// IsPrime reports whether n is prime using 6k±1 trial division.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n, or 2 when
// n <= 1.
func NextPrime(n int) int {
	if n <= 1 {
		return 2
	}
	p := n + 1
	for !IsPrime(p) {
		p++
	}
	return p
}
