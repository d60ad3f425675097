package systems

// mod returns a mod m in [0, m) for any sign of a.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// absInt returns |v|.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// toroidalDelta returns the shortest signed offset from a to b on a ring of size m.
func toroidalDelta(a, b, m int) int {
	d := mod(b-a, m)
	if d > m/2 {
		d -= m
	}
	return d
}
