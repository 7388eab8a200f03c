package helper

import "testing"

func TestOffset(t *testing.T) {
	cases := []struct {
		page    int
		perPage int
		want    int
	}{
		{1, 25, 0},
		{2, 25, 25},
		{4, 10, 30},
	}
	for _, tc := range cases {
		p := PageParams{Page: tc.page, PerPage: tc.perPage}
		if got := p.Offset(); got != tc.want {
			t.Errorf("Offset(page=%d, per=%d) = %d, want %d", tc.page, tc.perPage, got, tc.want)
		}
	}
}

func TestBuildPageMeta(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		perPage   int
		wantPages int
	}{
		{"exact multiple", 50, 25, 2},
		{"remainder rounds up", 51, 25, 3},
		{"empty set still has one page", 0, 25, 1},
		{"single row", 1, 25, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := BuildPageMeta(PageParams{Page: 1, PerPage: tc.perPage}, tc.total)
			if meta.TotalPages != tc.wantPages {
				t.Fatalf("TotalPages = %d, want %d", meta.TotalPages, tc.wantPages)
			}
			if meta.Total != tc.total {
				t.Fatalf("Total = %d, want %d", meta.Total, tc.total)
			}
		})
	}
}

func TestAtoiDefault(t *testing.T) {
	if got := atoiDefault("12", 1); got != 12 {
		t.Errorf("atoiDefault(12) = %d", got)
	}
	if got := atoiDefault(" 7 ", 1); got != 7 {
		t.Errorf("atoiDefault with spaces = %d", got)
	}
	if got := atoiDefault("x", 9); got != 9 {
		t.Errorf("atoiDefault fallback = %d", got)
	}
}
