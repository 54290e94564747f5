package main

import "testing"

func TestTileSnippet(t *testing.T) {
	tests := []struct {
		x, y float64
		want string
	}{
		{0, 0, `{"x": 0, "y": 0}`},
		{15.9, 31.5, `{"x": 0, "y": 1}`},
		{160, 384, `{"x": 10, "y": 24}`},
	}
	for _, tt := range tests {
		if got := tileSnippet(tt.x, tt.y); got != tt.want {
			t.Errorf("tileSnippet(%v, %v) = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}
