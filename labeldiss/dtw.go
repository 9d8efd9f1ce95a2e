// SPDX-License-Identifier: MIT

// dtw.go - Dynamic Time Warping as a sequence-label dissimilarity.
//
// DTW aligns two numeric sequences by warping the time axis and returns the
// minimal cumulative |a[i]-b[j]| cost. As a label strategy it compares
// sequence-valued vertex or edge labels that may differ in length or pace
// (sensor traces, audio features, time profiles).
//
// Contract:
//   - Diss(a, a) == 0; both sequences empty: 0; exactly one empty: +Inf
//     (no alignment exists);
//   - Window > 0 restricts the warp to the Sakoe-Chiba band |i-j| <= Window;
//     a band too narrow for the length difference yields +Inf. Window <= 0
//     means unconstrained.
//   - SlopePenalty >= 0 is added on every non-diagonal step to discourage
//     excessive stretching.
//
// Complexity: O(len(a)·len(b)) time, O(min-side) memory (two DP rows).

package labeldiss

import "math"

// DTW is a Dissimilarity over sequence labels. The zero value (no window,
// no penalty) is the classic unconstrained warping distance.
type DTW struct {
	// Window is the Sakoe-Chiba band half-width; <= 0 disables the band.
	Window int

	// SlopePenalty is added to every insertion/deletion step.
	SlopePenalty float64
}

// Diss returns the DTW distance between sequences a and b.
func (d DTW) Diss(a, b []float64) float64 {
	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return 0
	case n == 0 || m == 0:
		return math.Inf(1)
	}

	window := math.MaxInt32
	if d.Window > 0 {
		window = d.Window
	}
	inf := math.Inf(1)

	// Two rolling rows over the (n+1)x(m+1) DP table.
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				curr[j] = inf

				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			ins := prev[j] + d.SlopePenalty
			del := curr[j-1] + d.SlopePenalty
			match := prev[j-1]
			curr[j] = cost + min3(ins, del, match)
		}
		prev, curr = curr, prev
	}

	// The swap above leaves the last computed row in prev.
	return prev[m]
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
