// Average aligns and merges N polylines into a single representative
// polyline, used by linegraph when several EdgeTripGeoms on one edge
// need to collapse into one reference geometry, and by octi when
// building CombEdge target geometry from the underlying LineGraph
// geoms.
//
// Polylines sampled from slightly different trip variants of the same
// corridor rarely share a point count, so a pointwise average is
// meaningless without first aligning them. This package uses Dynamic
// Time Warping for that alignment: DTW's optimal warping path between
// the first polyline's points and every other polyline's points gives,
// for each point of the reference, the set of corresponding points to
// average against, driving an averaging fold instead of a standalone
// distance report.
package geom

import "math"

// Average aligns every polyline in lines against lines[0] via dynamic
// time warping on point coordinates, then returns, for each point of
// lines[0], the mean position of every aligned point across all lines.
//
// Preconditions: len(lines) >= 1, each polyline has >= 1 point.
// A single line is returned with its points unchanged; lines with one
// point each yield that point averaged with every other line's point.
func Average(lines ...Polyline) Polyline {
	if len(lines) == 0 {
		return Simple{}
	}
	ref := lines[0].Points()
	if len(lines) == 1 {
		return NewSimple(ref...)
	}

	sums := make([]Point, len(ref))
	counts := make([]int, len(ref))
	for i, p := range ref {
		sums[i] = p
		counts[i] = 1
	}

	for _, other := range lines[1:] {
		pts := other.Points()
		if len(pts) == 0 {
			continue
		}
		path := warpPath(ref, pts)
		for _, c := range path {
			sums[c.refIdx] = sums[c.refIdx].Add(pts[c.otherIdx])
			counts[c.refIdx]++
		}
	}

	out := make([]Point, len(ref))
	for i := range ref {
		out[i] = sums[i].Scale(1 / float64(counts[i]))
	}

	return NewSimple(out...)
}

// warpCoord is one step of the optimal warping path between two point
// sequences, identified by index into each — over 2D points with
// Euclidean local cost rather than a 1D series with absolute-difference
// cost.
type warpCoord struct {
	refIdx, otherIdx int
}

// warpPath runs the classic O(N*M) DTW dynamic program with Euclidean
// local cost and backtraces the optimal alignment (match/insert/delete
// with full-matrix backtracking), specialized to 2D coordinates and
// with the Sakoe-Chiba window and slope penalty omitted since polyline
// geometry alignment has no meaningful "time axis" to bound.
func warpPath(a, b []Point) []warpCoord {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			local := a[i-1].Dist(b[j-1])
			best := dp[i-1][j-1]
			if dp[i-1][j] < best {
				best = dp[i-1][j]
			}
			if dp[i][j-1] < best {
				best = dp[i][j-1]
			}
			dp[i][j] = local + best
		}
	}

	// Backtrace from (n,m) to (0,0), choosing the cheapest predecessor
	// cell at each step (ties broken match > insert > delete).
	path := make([]warpCoord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, warpCoord{refIdx: i - 1, otherIdx: j - 1})
		diag, up, left := dp[i-1][j-1], dp[i-1][j], dp[i][j-1]
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}

	return path
}
