// Package editdist computes bounded Damerau-Levenshtein distance: the
// minimum number of single-character insertions, deletions, substitutions,
// or adjacent transpositions needed to turn one byte string into another.
//
// Inputs are assumed to be ASCII after normalization, so distance is
// computed over bytes rather than runes: skipping []rune conversion avoids
// an allocation on every candidate scored during a lookup.
package editdist

// Bounded returns the Damerau-Levenshtein distance between a and b, or any
// value greater than max if the true distance exceeds max. Passing a
// negative max always returns max+1 without doing any work.
//
// The implementation rolls three rows (prev2, prev, curr) rather than a full
// matrix: prev2 is needed alongside prev to detect the adjacent
// transposition at d[i-2][j-2]+1.
func Bounded(a, b []byte, max int) int {
	if max < 0 {
		return max + 1
	}

	la, lb := len(a), len(b)
	if absInt(la-lb) > max {
		return max + 1
	}
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]

		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if trans := prev2[j-2] + 1; trans < best {
					best = trans
				}
			}

			curr[j] = best
			if best < rowMin {
				rowMin = best
			}
		}

		if rowMin > max {
			return max + 1
		}

		prev2, prev, curr = prev, curr, prev2
	}

	return prev[lb]
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
