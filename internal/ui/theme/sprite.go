package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Sprite is a GPU texture handle. The zero value draws as a placeholder box.
type Sprite struct {
	Tex  rl.Texture2D
	Path string
}

func (s *Sprite) Size() (int, int) {
	if s == nil {
		return 0, 0
	}
	return int(s.Tex.Width), int(s.Tex.Height)
}

func (s *Sprite) Loaded() bool {
	return s != nil && s.Tex.ID != 0
}

// Unload frees the texture. Safe on nil and repeated calls.
func (s *Sprite) Unload() {
	if s == nil || s.Tex.ID == 0 {
		return
	}
	rl.UnloadTexture(s.Tex)
	s.Tex = rl.Texture2D{}
}

// AsSprite unwraps an opaque sprite handle produced by the GUI loader.
func AsSprite(v any) *Sprite {
	s, _ := v.(*Sprite)
	return s
}

// DrawSprite stretches sprite into dest.
func DrawSprite(v any, dest rl.Rectangle, tint rl.Color) {
	s := AsSprite(v)
	if !s.Loaded() {
		rl.DrawRectangleRec(dest, rl.Fade(tint, 0.25))
		rl.DrawRectangleLinesEx(dest, 1, rl.Fade(tint, 0.6))
		return
	}
	src := rl.NewRectangle(0, 0, float32(s.Tex.Width), float32(s.Tex.Height))
	rl.DrawTexturePro(s.Tex, src, dest, rl.Vector2{}, 0, tint)
}

// DrawSpriteCentered draws sprite at size x size centered on (cx, cy).
func DrawSpriteCentered(v any, cx, cy, size float32, tint rl.Color) {
	DrawSprite(v, rl.NewRectangle(cx-size/2, cy-size/2, size, size), tint)
}

// DrawSilhouette draws an uncaught creature as a black shape.
func DrawSilhouette(v any, dest rl.Rectangle) {
	DrawSprite(v, dest, rl.Black)
}

// DrawBackground fills the screen with sprite, or fill when it is missing.
func DrawBackground(v any, w, h int32, fill rl.Color) {
	if s := AsSprite(v); s.Loaded() {
		DrawSprite(s, rl.NewRectangle(0, 0, float32(w), float32(h)), rl.White)
		return
	}
	rl.ClearBackground(fill)
}
