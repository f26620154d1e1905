package theme

// Sizes are tuned for the 480x320 handheld screen.
type Typography struct {
	Title      int32
	Header     int32
	Body       int32
	Small      int32
	LineFactor float32
}

var Type = Typography{
	Title:      24,
	Header:     18,
	Body:       15,
	Small:      12,
	LineFactor: 1.3,
}

// LineHeight returns the baseline-to-baseline distance for size.
func LineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(float32(size)*Type.LineFactor + 0.5)
}
