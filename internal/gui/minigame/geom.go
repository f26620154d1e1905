package minigame

// box is an axis-aligned rectangle in screen pixels.
type box struct {
	X, Y, W, H float32
}

func (b box) overlaps(o box) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W && b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

func (b box) centerX() float32 { return b.X + b.W/2 }

func (b box) centerY() float32 { return b.Y + b.H/2 }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
