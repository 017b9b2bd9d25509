package store

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		page      int
		wantFirst int
		wantLen   int
	}{
		{"page 1", 1, 0, 10},
		{"page 2", 2, 10, 10},
		{"last partial page", 3, 20, 3},
		{"beyond last page", 4, 0, 0},
		{"far beyond", 100, 0, 0},
		{"page zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := Paginate(items, tt.page, 10)
			if len(window) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(window), tt.wantLen)
			}
			if tt.wantLen > 0 && window[0] != tt.wantFirst {
				t.Errorf("first = %d, want %d", window[0], tt.wantFirst)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{23, 10, 3},
		{20, 10, 2},
		{1, 10, 1},
		{0, 10, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{2, 3, 2},
		{0, 3, 1},
		{-5, 3, 1},
		{4, 3, 3},
		{1, 0, 1},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}
