package common

const (
	// BlockSize is the pixel edge length of one map tile.
	BlockSize = 16
	// Columns and Rows describe the visible canvas in tiles.
	Columns = 50
	Rows    = 32

	ScreenWidth  = Columns * BlockSize
	ScreenHeight = Rows * BlockSize
)

// TilesToPixels scales a tile-grid coordinate to pixels.
func TilesToPixels(t int) float64 {
	return float64(t * BlockSize)
}
