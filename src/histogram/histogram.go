// Package histogram provides fixed-range 1D and 2D binning for sample
// arrays plus the small numeric helpers the distribution renderers need
// (step polylines, pulls, weight normalization).
//
// The core performs no input validation: non-positive bin counts,
// inverted ranges and mismatched array lengths are caller responsibility
// and surface as degenerate (all-zero or non-finite) results.
package histogram

import "math"

// Range is a closed-open interval [Lo, Hi). A sample exactly at Hi falls
// outside the range.
type Range struct {
	Lo, Hi float64
}

// Width returns Hi - Lo.
func (r Range) Width() float64 { return r.Hi - r.Lo }

// Contains reports whether v lies inside the half-open interval.
func (r Range) Contains(v float64) bool { return v >= r.Lo && v < r.Hi }

// Edges returns the bins+1 bin edges spanning rng.
func Edges(rng Range, bins int) []float64 {
	edges := make([]float64, bins+1)
	w := rng.Width() / float64(bins)
	for i := range edges {
		edges[i] = rng.Lo + float64(i)*w
	}
	edges[bins] = rng.Hi
	return edges
}

// Centers returns the midpoints of consecutive edges.
func Centers(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	c := make([]float64, len(edges)-1)
	for i := range c {
		c[i] = (edges[i] + edges[i+1]) / 2
	}
	return c
}

// Hist1D bins samples into bins equal-width bins over rng and returns the
// per-bin accumulated weight plus the bin edges. A nil weights slice counts
// every sample as 1. Standard fixed-range binning: the last bin is closed
// on both sides, so a sample exactly at rng.Hi lands in it (unlike the
// fast 2D path, which drops it).
func Hist1D(samples []float64, bins int, rng Range, weights []float64) (counts, edges []float64) {
	counts = make([]float64, bins)
	w := rng.Width()
	for i, v := range samples {
		if v < rng.Lo || v > rng.Hi {
			continue
		}
		ix := int((v - rng.Lo) / w * float64(bins))
		if ix >= bins { // v at or rounded up to the top edge
			ix = bins - 1
		}
		if weights != nil {
			counts[ix] += weights[i]
		} else {
			counts[ix]++
		}
	}
	return counts, Edges(rng, bins)
}

// Grid2D is a 2D histogram stored as a flat array of length BinsX*BinsY,
// linearized as ix + BinsX*iy.
type Grid2D struct {
	BinsX, BinsY int
	Counts       []float64
}

// At returns the accumulated weight of bin (ix, iy).
func (g Grid2D) At(ix, iy int) float64 { return g.Counts[ix+g.BinsX*iy] }

// Sum returns the total accumulated weight.
func (g Grid2D) Sum() float64 {
	var s float64
	for _, v := range g.Counts {
		s += v
	}
	return s
}

// Max returns the largest bin value, 0 for an empty grid.
func (g Grid2D) Max() float64 {
	m := 0.0
	for _, v := range g.Counts {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest bin value, 0 for an empty grid.
func (g Grid2D) Min() float64 {
	if len(g.Counts) == 0 {
		return 0
	}
	m := g.Counts[0]
	for _, v := range g.Counts[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Hist2D bins two equal-length coordinate arrays into a (by, bx) grid over
// the given per-axis ranges using direct index arithmetic instead of a
// general binning routine. A nil weights slice counts every sample as 1.
// Samples outside either range on either axis are dropped, not clipped;
// the upper range bound is exclusive per dimension. Empty input yields an
// all-zero grid, not an error.
func Hist2D(x, y []float64, bx, by int, rx, ry Range, weights []float64) (grid Grid2D, xedges, yedges []float64) {
	counts := make([]float64, bx*by)
	wx, wy := rx.Width(), ry.Width()
	for i := range x {
		if !rx.Contains(x[i]) || !ry.Contains(y[i]) {
			continue
		}
		ix := int((x[i] - rx.Lo) / wx * float64(bx))
		iy := int((y[i] - ry.Lo) / wy * float64(by))
		if ix >= bx {
			ix = bx - 1
		}
		if iy >= by {
			iy = by - 1
		}
		if weights != nil {
			counts[ix+bx*iy] += weights[i]
		} else {
			counts[ix+bx*iy]++
		}
	}
	return Grid2D{BinsX: bx, BinsY: by, Counts: counts}, Edges(rx, bx), Edges(ry, by)
}

// StepXY expands bin edges and counts into a step polyline: each bin
// contributes its left and right edge at the bin's height, so consecutive
// flat segments connect without interpolation. Both returned slices have
// length 2*len(counts).
func StepXY(edges, counts []float64) (xs, ys []float64) {
	xs = make([]float64, 0, 2*len(counts))
	ys = make([]float64, 0, 2*len(counts))
	for i, c := range counts {
		xs = append(xs, edges[i], edges[i+1])
		ys = append(ys, c, c)
	}
	return xs, ys
}

// Pull returns the per-bin normalized residual (data-model)/sqrt(data),
// defined as 0 wherever the data bin is empty.
func Pull(data, model []float64) []float64 {
	out := make([]float64, len(data))
	for i := range data {
		if data[i] == 0 {
			continue
		}
		out[i] = (data[i] - model[i]) / math.Sqrt(data[i])
	}
	return out
}

// ScaleToData returns sum(data)/sum(model), the factor that makes the
// model histogram integrate to the data histogram. A zero-sum model yields
// a non-finite factor; guarding against that is the caller's job.
func ScaleToData(data, model []float64) float64 {
	var sd, sm float64
	for _, v := range data {
		sd += v
	}
	for _, v := range model {
		sm += v
	}
	return sd / sm
}

// Scaled returns a copy of counts multiplied by factor.
func Scaled(counts []float64, factor float64) []float64 {
	out := make([]float64, len(counts))
	for i, v := range counts {
		out[i] = v * factor
	}
	return out
}

// NormalizeWeights returns a copy of w rescaled so its sum equals n,
// preserving the shape of the weighted distribution while fixing its
// integral to the sample count.
func NormalizeWeights(w []float64, n int) []float64 {
	var sum float64
	for _, v := range w {
		sum += v
	}
	return Scaled(w, float64(n)/sum)
}

// Mul returns the element-wise product of a and b.
func Mul(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}
