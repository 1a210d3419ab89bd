package search

// MatchThreshold is the minimum normalized edit-similarity for two tokens to
// count as a match. The comparison is strictly greater-than.
const MatchThreshold = 0.6

// Similarity returns the normalized Levenshtein similarity between two
// strings, in [0, 1]. Identical strings score exactly 1; two empty strings
// are identical and also score 1. The measure is symmetric.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	// rb is never longer than ra below; swapping does not change the distance
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	dist := levenshtein(ra, rb)
	return 1 - float64(dist)/float64(len(ra))
}

// Matches reports whether two tokens are similar enough to count as a match
func Matches(a, b string) bool {
	return Similarity(a, b) > MatchThreshold
}

// levenshtein computes the edit distance (unit-cost insert, delete,
// substitute) over a full DP matrix with rows over the shorter string.
func levenshtein(long, short []rune) int {
	rows, cols := len(short)+1, len(long)+1

	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
		matrix[i][0] = i
	}
	for j := 0; j < cols; j++ {
		matrix[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if short[i-1] == long[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[rows-1][cols-1]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
