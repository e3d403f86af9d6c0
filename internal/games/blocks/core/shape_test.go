package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func TestRotateIsReverseThenTranspose(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		expected []string
	}{
		{
			name:     "horizontal bar becomes vertical",
			in:       []string{"###"},
			expected: []string{"#", "#", "#"},
		},
		{
			name:     "L corner",
			in:       []string{"###", "#.."},
			expected: []string{"##", ".#", ".#"},
		},
		{
			name:     "S zigzag",
			in:       []string{"##.", ".##"},
			expected: []string{".#", "##", "#."},
		},
		{
			name:     "hook",
			in:       []string{"####", "...#"},
			expected: []string{".#", ".#", ".#", "##"},
		},
		{
			name:     "cup",
			in:       []string{"#.#", "###"},
			expected: []string{"##", "#.", "##"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := core.MustParseShape(tc.in...).Rotate().Rows()
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Rotate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for id, s := range core.Catalog() {
		if !s.RotateN(4).Equal(s) {
			t.Errorf("shape %d (%s): four rotations changed it to %s", id, s, s.RotateN(4))
		}
		r := s.Rotate()
		if r.Width() != s.Height() || r.Height() != s.Width() {
			t.Errorf("shape %d: rotated box %dx%d, want %dx%d", id, r.Height(), r.Width(), s.Width(), s.Height())
		}
		if r.BlockCount() != s.BlockCount() {
			t.Errorf("shape %d: rotation changed block count", id)
		}
	}
}

func TestCatalog(t *testing.T) {
	if core.CatalogSize != 20 {
		t.Fatalf("CatalogSize = %d, expected 20", core.CatalogSize)
	}

	expected := []int{1, 2, 3, 4, 4, 4, 4, 4, 5, 5, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6}
	got := make([]int, 0, core.CatalogSize)
	for _, s := range core.Catalog() {
		got = append(got, s.BlockCount())
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("catalog block counts mismatch (-want +got):\n%s", diff)
	}

	if _, ok := core.CatalogShape(-1); ok {
		t.Error("CatalogShape(-1) should not exist")
	}
	if _, ok := core.CatalogShape(core.ShapeID(core.CatalogSize)); ok {
		t.Error("CatalogShape(CatalogSize) should not exist")
	}
	if s, ok := core.CatalogShape(16); !ok || s.String() != "######" {
		t.Errorf("CatalogShape(16) = %q, expected ######", s)
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	c := core.Catalog()
	c[0] = core.MustParseShape("##")

	s, _ := core.CatalogShape(0)
	if s.String() != "#" {
		t.Errorf("modifying Catalog() copy changed entry 0 to %s", s)
	}
}

func TestNewShapeErrors(t *testing.T) {
	if _, err := core.NewShape(nil); err == nil {
		t.Error("NewShape(nil) should fail")
	}
	if _, err := core.NewShape([][]bool{{}}); err == nil {
		t.Error("NewShape with empty row should fail")
	}
	if _, err := core.NewShape([][]bool{{true, true}, {true}}); err == nil {
		t.Error("NewShape with ragged rows should fail")
	}
	if _, err := core.ParseShape("##", "#"); err == nil {
		t.Error("ParseShape with ragged rows should fail")
	}
}

func TestShapeQueries(t *testing.T) {
	s := core.MustParseShape("#.", "##", ".#")

	if s.Height() != 3 || s.Width() != 2 {
		t.Errorf("box = %dx%d, expected 3x2", s.Height(), s.Width())
	}
	if s.BlockCount() != 4 {
		t.Errorf("BlockCount() = %d, expected 4", s.BlockCount())
	}
	if s.Filled(0, 1) {
		t.Error("(0,1) should be empty")
	}
	if !s.Filled(2, 1) {
		t.Error("(2,1) should be filled")
	}
	if s.Filled(5, 0) || s.Filled(0, -1) {
		t.Error("out-of-box cells should report empty")
	}

	offsets := []core.Position{core.P(0, 0), core.P(1, 0), core.P(1, 1), core.P(2, 1)}
	if diff := cmp.Diff(offsets, s.Offsets()); diff != "" {
		t.Errorf("Offsets() mismatch (-want +got):\n%s", diff)
	}
}
