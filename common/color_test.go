package common

import (
	"encoding/json"
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRGBAddIsUnclamped(t *testing.T) {
	c := RGB{R: 200, G: 10, B: 0}.Add(RGB{R: 100, G: 20, B: 5})
	if c != (RGB{R: 300, G: 30, B: 5}) {
		t.Fatalf("Add = %+v", c)
	}
	if got := c.NRGBA(); got != (color.NRGBA{R: 255, G: 30, B: 5, A: 255}) {
		t.Fatalf("NRGBA = %+v, want clamped red channel", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "pink", want: RGB{R: 255, G: 192, B: 203}},
		{in: " Pink ", want: RGB{R: 255, G: 192, B: 203}},
		{in: "#ff6600", want: RGB{R: 255, G: 102, B: 0}},
		{in: "#ff66", wantErr: true},
		{in: "not-a-color", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRGBUnmarshalJSONForms(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want RGB
	}{
		{"object", `{"r": 113, "g": 107, "b": 107}`, RGB{R: 113, G: 107, B: 107}},
		{"name", `"pink"`, RGB{R: 255, G: 192, B: 203}},
		{"hex", `"#0000ff"`, RGB{B: 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c RGB
			if err := json.Unmarshal([]byte(tc.doc), &c); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if c != tc.want {
				t.Fatalf("got %+v, want %+v", c, tc.want)
			}
		})
	}

	var c RGB
	if err := json.Unmarshal([]byte(`"mauve-ish"`), &c); err == nil {
		t.Fatalf("expected unknown color name to fail")
	}
}

func TestRGBUnmarshalYAML(t *testing.T) {
	var doc struct {
		Name  RGB `yaml:"name"`
		Plain RGB `yaml:"plain"`
	}
	src := "name: steelblue\nplain: {r: 1, g: 2, b: 3}\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Name != (RGB{R: 70, G: 130, B: 180}) {
		t.Fatalf("name = %+v", doc.Name)
	}
	if doc.Plain != (RGB{R: 1, G: 2, B: 3}) {
		t.Fatalf("plain = %+v", doc.Plain)
	}
}

func TestRGBDistance(t *testing.T) {
	a := RGB{R: 0, G: 0, B: 0}
	b := RGB{R: 3, G: 4, B: 0}
	if d := a.Distance(b); d != 5 {
		t.Fatalf("Distance = %v, want 5", d)
	}
}
