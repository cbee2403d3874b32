package display

// Panel positions in the grid are pure functions of the dimension and the
// running pair index n, which counts pairs (i, j) with j < i in row-major
// order of i. Row 0 is reserved for the per-dimension 1D comparisons; the
// 2D maps fill the rows below, packed differently for even and odd
// dimension counts.

// DataPanel returns the grid position of the n-th data density panel in an
// incremental display of the given dimension.
func DataPanel(dim, n int) (row, col int) {
	if dim%2 == 0 {
		return n/(dim/2) + 1, 2 * (n % (dim / 2))
	}
	return 2*(n/dim) + 1, n % dim
}

// NormPanel returns the grid position of the n-th normalization density
// panel, adjacent to its data panel: next column for even dimensions, next
// row for odd ones.
func NormPanel(dim, n int) (row, col int) {
	if dim%2 == 0 {
		return n/(dim/2) + 1, 2*(n%(dim/2)) + 1
	}
	return 2*(n/dim) + 2, n % dim
}

// ComparisonPanels returns the pair of positions the static comparison
// grid uses for the n-th variable pair: the first sample's map and the
// second's, side by side for even dimensions, stacked for odd ones.
func ComparisonPanels(dim, n int) (r1, c1, r2, c2 int) {
	if dim%2 == 0 {
		r1 = n/(dim/2) + 1
		c1 = n % (dim / 2)
		return r1, c1, r1, c1 + 1
	}
	r1 = 2*(n/dim) + 1
	c1 = n % dim
	return r1, c1, r1 + 1, c1
}

// GridShape returns the panel grid dimensions needed to hold row 0 plus
// every pair panel for the given dimension count.
func GridShape(dim int) (rows, cols int) {
	npairs := dim * (dim - 1) / 2
	if dim%2 == 0 {
		return (npairs-1)/(dim/2) + 2, dim
	}
	return 2*((npairs-1)/dim) + 3, dim
}
