package suppression

// MatchGlob reports whether text matches the wildcard pattern. "*" matches
// any run of zero or more bytes, "?" matches exactly one byte, and every
// other byte matches itself. Matching is byte-wise (a "?" covers one byte of
// a multi-byte rune, as Valgrind's own matcher does), case-sensitive and
// anchored: the whole of text must be consumed. An empty pattern matches
// only empty text.
//
// There are no invalid patterns; a pattern without wildcards degenerates to
// string equality.
func MatchGlob(pattern, text string) bool {
	// Two-pointer scan with single-level backtracking: remember the most
	// recent "*" and the text position it is currently assumed to cover up
	// to. On a mismatch, extend that star by one character and retry. Each
	// position is revisited at most once per star, keeping the worst case
	// at O(len(pattern) * len(text)).
	var p, t int
	star, resume := -1, 0

	for t < len(text) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			star, resume = p, t
			p++
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == text[t]):
			p++
			t++
		case star >= 0:
			resume++
			p, t = star+1, resume
		default:
			return false
		}
	}

	// Only trailing stars may remain unconsumed.
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
