package main

import (
	"os"
	"path/filepath"
	"testing"
)

const validSample = `{
  "labels": ["m", "t"],
  "units": ["MeV", "ps"],
  "bins": [10, 10],
  "ranges": [[0, 4], [0, 2]],
  "data": [[0.1, 1.2, 2.3], [0.5, 1.5, 0.5]],
  "norm": [[0.2, 1.1, 2.0, 3.0], [0.4, 1.4, 0.6, 1.0]],
  "weights": [1, 2, 1, 1]
}`

func writeSample(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "samples.json")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadSampleFile(t *testing.T) {
	f, err := loadSampleFile(writeSample(t, validSample))
	if err != nil {
		t.Fatal(err)
	}
	if f.dim() != 2 {
		t.Fatalf("dim = %d", f.dim())
	}
	rs := f.ranges()
	if rs[0].Lo != 0 || rs[0].Hi != 4 || rs[1].Hi != 2 {
		t.Fatalf("ranges = %v", rs)
	}
	if len(f.weights()) != 4 {
		t.Fatalf("weights = %v", f.weights())
	}
}

func TestLoadSampleFileUniformWeights(t *testing.T) {
	body := `{
  "labels": ["m"],
  "bins": [5],
  "ranges": [[0, 1]],
  "data": [[0.1, 0.2]],
  "norm": [[0.3, 0.4, 0.5]]
}`
	f, err := loadSampleFile(writeSample(t, body))
	if err != nil {
		t.Fatal(err)
	}
	w := f.weights()
	if len(w) != 3 {
		t.Fatalf("uniform weights length = %d, want norm length", len(w))
	}
	for _, v := range w {
		if v != 1 {
			t.Fatalf("uniform weights = %v", w)
		}
	}
}

func TestLoadSampleFileRejectsMismatches(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no labels", `{"labels": [], "bins": [], "ranges": [], "data": [], "norm": []}`},
		{"bins mismatch", `{"labels": ["a"], "bins": [1, 2], "ranges": [[0, 1]], "data": [[1]], "norm": [[1]]}`},
		{"column count", `{"labels": ["a", "b"], "bins": [1, 1], "ranges": [[0, 1], [0, 1]], "data": [[1]], "norm": [[1], [1]]}`},
		{"ragged columns", `{"labels": ["a", "b"], "bins": [1, 1], "ranges": [[0, 1], [0, 1]], "data": [[1, 2], [1]], "norm": [[1], [1]]}`},
		{"weights length", `{"labels": ["a"], "bins": [1], "ranges": [[0, 1]], "data": [[1]], "norm": [[1, 2]], "weights": [1]}`},
		{"bad json", `{`},
	}
	for _, c := range cases {
		if _, err := loadSampleFile(writeSample(t, c.body)); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestLoadSampleFileMissing(t *testing.T) {
	if _, err := loadSampleFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
