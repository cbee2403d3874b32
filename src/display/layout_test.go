package display

import "testing"

type pos struct{ r, c int }

func TestDataPanelPositions(t *testing.T) {
	cases := []struct {
		dim  int
		want []pos
	}{
		{2, []pos{{1, 0}}},
		{3, []pos{{1, 0}, {1, 1}, {1, 2}}},
		{4, []pos{{1, 0}, {1, 2}, {2, 0}, {2, 2}, {3, 0}, {3, 2}}},
		{5, []pos{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}}},
	}
	for _, c := range cases {
		for n, want := range c.want {
			r, cc := DataPanel(c.dim, n)
			if r != want.r || cc != want.c {
				t.Fatalf("DataPanel(%d, %d) = (%d, %d), want (%d, %d)", c.dim, n, r, cc, want.r, want.c)
			}
		}
	}
}

func TestNormPanelPositions(t *testing.T) {
	cases := []struct {
		dim  int
		want []pos
	}{
		{2, []pos{{1, 1}}},
		{3, []pos{{2, 0}, {2, 1}, {2, 2}}},
		{4, []pos{{1, 1}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 3}}},
		{5, []pos{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}}},
	}
	for _, c := range cases {
		for n, want := range c.want {
			r, cc := NormPanel(c.dim, n)
			if r != want.r || cc != want.c {
				t.Fatalf("NormPanel(%d, %d) = (%d, %d), want (%d, %d)", c.dim, n, r, cc, want.r, want.c)
			}
		}
	}
}

func TestDataAndNormPanelsDisjoint(t *testing.T) {
	for _, dim := range []int{2, 3, 4, 5} {
		npairs := dim * (dim - 1) / 2
		seen := map[pos]bool{}
		for n := 0; n < npairs; n++ {
			r, c := DataPanel(dim, n)
			if r == 0 {
				t.Fatalf("dim %d pair %d: data panel in comparison row", dim, n)
			}
			if seen[pos{r, c}] {
				t.Fatalf("dim %d pair %d: data panel (%d, %d) reused", dim, n, r, c)
			}
			seen[pos{r, c}] = true
			r, c = NormPanel(dim, n)
			if seen[pos{r, c}] {
				t.Fatalf("dim %d pair %d: norm panel (%d, %d) reused", dim, n, r, c)
			}
			seen[pos{r, c}] = true
		}
	}
}

func TestGridShape(t *testing.T) {
	cases := []struct{ dim, rows, cols int }{
		{2, 2, 2},
		{3, 3, 3},
		{4, 4, 4},
		{5, 5, 5},
	}
	for _, c := range cases {
		rows, cols := GridShape(c.dim)
		if rows != c.rows || cols != c.cols {
			t.Fatalf("GridShape(%d) = (%d, %d), want (%d, %d)", c.dim, rows, cols, c.rows, c.cols)
		}
	}
}

func TestGridShapeCoversAllPanels(t *testing.T) {
	for _, dim := range []int{2, 3, 4, 5, 6, 7} {
		rows, cols := GridShape(dim)
		npairs := dim * (dim - 1) / 2
		for n := 0; n < npairs; n++ {
			for _, f := range []func(int, int) (int, int){DataPanel, NormPanel} {
				r, c := f(dim, n)
				if r >= rows || c >= cols {
					t.Fatalf("dim %d pair %d: panel (%d, %d) outside %dx%d grid", dim, n, r, c, rows, cols)
				}
			}
			r1, c1, r2, c2 := ComparisonPanels(dim, n)
			if r1 >= rows || c1 >= cols || r2 >= rows || c2 >= cols {
				t.Fatalf("dim %d pair %d: comparison panels (%d,%d)/(%d,%d) outside %dx%d grid",
					dim, n, r1, c1, r2, c2, rows, cols)
			}
		}
	}
}

func TestComparisonPanels(t *testing.T) {
	// even: side by side in one row; odd: stacked in one column
	r1, c1, r2, c2 := ComparisonPanels(2, 0)
	if r1 != 1 || c1 != 0 || r2 != 1 || c2 != 1 {
		t.Fatalf("ComparisonPanels(2, 0) = (%d,%d)/(%d,%d)", r1, c1, r2, c2)
	}
	r1, c1, r2, c2 = ComparisonPanels(3, 2)
	if r1 != 1 || c1 != 2 || r2 != 2 || c2 != 2 {
		t.Fatalf("ComparisonPanels(3, 2) = (%d,%d)/(%d,%d)", r1, c1, r2, c2)
	}
}
