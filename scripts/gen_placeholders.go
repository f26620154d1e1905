//go:build ignore

// gen_placeholders.go – run with:
//
//	go run scripts/gen_placeholders.go [-root .]
//
// Writes placeholder art under <root>/assets: one icon per region, the
// fallback battle background, the ball and a "red" trainer. Existing files
// are left alone so real art is never overwritten.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/pokedex/internal/game"
)

func main() {
	root := flag.String("root", ".", "asset root")
	flag.Parse()
	assets := filepath.Join(*root, "assets")

	for i, r := range game.DefaultProgression().Regions {
		// Spread the hues so adjacent icons in the grid differ.
		tint := color.RGBA{uint8(60 + i*37%160), uint8(90 + i*53%140), uint8(120 + i*71%120), 0xFF}
		genTexture(filepath.Join(assets, "regions", strings.ToLower(r.Name), "icon.png"), 64, 64, 4,
			color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}, tint)
	}

	genTexture(filepath.Join(assets, "fallback_background.png"), 480, 320, 0,
		color.RGBA{}, color.RGBA{0x7C, 0xB3, 0x42, 0xFF})

	genBall(filepath.Join(assets, "ball.png"), 32)

	for _, side := range []string{"front.png", "back.png"} {
		genTexture(filepath.Join(assets, "trainers", "red", side), 64, 64, 6,
			color.RGBA{0x20, 0x20, 0x20, 0xFF}, color.RGBA{0xD3, 0x2F, 0x2F, 0xFF})
	}

	log.Printf("Placeholder art written to %s", assets)
}

// genTexture writes a w×h PNG whose outer border pixels are border and whose
// centre is centre.
func genTexture(path string, w, h, border int, edge, centre color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < border || y < border || x >= w-border || y >= h-border {
				img.SetRGBA(x, y, edge)
			} else {
				img.SetRGBA(x, y, centre)
			}
		}
	}
	write(path, img)
}

// genBall draws a red-over-white disc with a dark band.
func genBall(path string, size int) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy > r*r {
				continue
			}
			c := color.RGBA{0xF5, 0xF5, 0xF5, 0xFF}
			switch {
			case dy > -1.5 && dy < 1.5:
				c = color.RGBA{0x20, 0x20, 0x20, 0xFF}
			case dy < 0:
				c = color.RGBA{0xE5, 0x39, 0x35, 0xFF}
			}
			img.SetRGBA(x, y, c)
		}
	}
	write(path, img)
}

func write(path string, img image.Image) {
	if _, err := os.Stat(path); err == nil {
		log.Printf("  kept %s", path)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s", path)
}
