package obj

import "github.com/milk9111/chroma/common"

// Tint is the background color accumulated from collected items.
type Tint struct {
	Color  common.RGB
	Active bool
}

// Add sums c into the tint componentwise and marks it active.
func (t Tint) Add(c common.RGB) Tint {
	return Tint{Color: t.Color.Add(c), Active: true}
}
