// Package bigchar renders kana as large block art using half-block characters.
package bigchar

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontPaths are the system fonts tried, in order, for a face with kana.
var FontPaths = []string{
	// macOS
	"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	"/usr/share/fonts/truetype/takao-gothic/TakaoGothic.ttf",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msgothic.ttc",
	"C:\\Windows\\Fonts\\YuGothR.ttc",
}

const fontSize = 64

var (
	mu       sync.RWMutex
	face     font.Face
	loadOnce sync.Once
	rendered = cache.New(cache.NoExpiration, 0)
)

func loadSystemFace() {
	for _, path := range FontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if f, err := ParseFace(data); err == nil {
			SetFace(f)
			return
		}
	}
}

// ParseFace parses a font file or collection. OpenType parsing is tried
// first; plain TrueType files the OpenType parser rejects go through
// freetype.
func ParseFace(data []byte) (font.Face, error) {
	opts := &opentype.FaceOptions{Size: fontSize, DPI: 72, Hinting: font.HintingNone}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			return opentype.NewFace(fnt, opts)
		}
	}
	if fnt, err := opentype.Parse(data); err == nil {
		return opentype.NewFace(fnt, opts)
	}

	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return truetype.NewFace(fnt, &truetype.Options{Size: fontSize, DPI: 72}), nil
}

// SetFace replaces the face used for rendering and drops cached renders.
func SetFace(f font.Face) {
	mu.Lock()
	defer mu.Unlock()
	face = f
	rendered.Flush()
}

func currentFace() font.Face {
	loadOnce.Do(func() {
		mu.RLock()
		preset := face != nil
		mu.RUnlock()
		if !preset {
			loadSystemFace()
		}
	})
	mu.RLock()
	defer mu.RUnlock()
	return face
}

// IsAvailable reports whether a usable font was found.
func IsAvailable() bool {
	return currentFace() != nil
}

// ErrNoGlyph is returned when the face lacks a glyph of the text.
var ErrNoGlyph = errors.New("bigchar: glyph not in font")

// RenderBlock renders text with half-block characters (▀▄█). cols and rows
// are the output size in terminal cells.
func RenderBlock(text string, cols, rows int) (string, error) {
	f := currentFace()
	if text == "" || f == nil || cols <= 0 || rows <= 0 {
		return "", nil
	}

	// Faces keep scratch buffers and are not safe for concurrent use.
	mu.Lock()
	defer mu.Unlock()

	for _, r := range text {
		if _, ok := f.GlyphAdvance(r); !ok {
			return "", fmt.Errorf("%w: %q", ErrNoGlyph, r)
		}
	}

	bounds, _ := font.BoundString(f, text)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := max(glyphWidth+padding*2, fontSize)
	srcHeight := max(glyphHeight+padding*2, fontSize)

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	x := (srcWidth-glyphWidth)/2 - bounds.Min.X.Floor()
	y := srcHeight - padding - bounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)

	return toHalfBlocks(scaleDown(src, cols, rows*2), cols, rows), nil
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth, srcHeight := src.Bounds().Max.X, src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1, sy1 := int(float64(dx)*xRatio), int(float64(dy)*yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			sum, count := 0, 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// threshold is the brightness above which a half cell is drawn.
const threshold = 40

func toHalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// GetCached returns the cached render of text, rendering it on a miss.
// It returns "" when no font is available or the font lacks a glyph.
func GetCached(text string, cols, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := fmt.Sprintf("%s/%dx%d", text, cols, rows)
	if v, ok := rendered.Get(key); ok {
		return v.(string)
	}

	out, err := RenderBlock(text, cols, rows)
	if err != nil {
		return ""
	}
	rendered.SetDefault(key, out)
	return out
}
