package render

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/painthaus/painthaus/pkg/math3d"
	"github.com/painthaus/painthaus/pkg/painter"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Draw converts the framebuffer to terminal cells on the screen. Each
// terminal row carries two framebuffer rows as a ▀ half block with
// fg=top color and bg=bottom color.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalSurface presents rasterized frames as terminal cells. It
// implements painter.Surface.
type TerminalSurface struct {
	term       *uv.Terminal
	fb         *Framebuffer
	rasterizer *Rasterizer

	cols, rows int
	background Color
	wireframe  bool
	wireColor  Color
}

// NewTerminalSurface creates a surface over an already-started
// terminal with the given cell dimensions. The framebuffer is twice as
// tall as the terminal because of half-block rendering.
func NewTerminalSurface(term *uv.Terminal, cols, rows int) *TerminalSurface {
	fb := NewFramebuffer(cols, rows*2)
	return &TerminalSurface{
		term:       term,
		fb:         fb,
		rasterizer: NewRasterizer(fb),
		cols:       cols,
		rows:       rows,
		background: RGB(30, 30, 40),
		wireColor:  RGB(0, 255, 128),
	}
}

// Resize rebuilds the framebuffer for new terminal dimensions.
func (s *TerminalSurface) Resize(cols, rows int) {
	s.cols, s.rows = cols, rows
	s.fb = NewFramebuffer(cols, rows*2)
	s.rasterizer.SetFramebuffer(s.fb)
}

// SetBackground sets the clear color.
func (s *TerminalSurface) SetBackground(c Color) {
	s.background = c
}

// SetWireframe toggles edge-only drawing.
func (s *TerminalSurface) SetWireframe(on bool) {
	s.wireframe = on
}

// Wireframe reports whether edge-only drawing is active.
func (s *TerminalSurface) Wireframe() bool {
	return s.wireframe
}

// Framebuffer exposes the pixel buffer, e.g. for screenshots.
func (s *TerminalSurface) Framebuffer() *Framebuffer {
	return s.fb
}

// Size returns the drawable size in pixels.
func (s *TerminalSurface) Size() (int, int) {
	return s.fb.Width, s.fb.Height
}

// Clear fills the framebuffer with the background color.
func (s *TerminalSurface) Clear() {
	s.fb.Clear(s.background)
}

// Draw rasterizes the stream in submission order.
func (s *TerminalSurface) Draw(stream []painter.Vertex, modelView, projection math3d.Mat4) {
	if s.wireframe {
		s.rasterizer.DrawStreamWireframe(stream, modelView, projection, s.wireColor)
		return
	}
	s.rasterizer.DrawStream(stream, modelView, projection)
}

// Present pushes the framebuffer to the terminal.
func (s *TerminalSurface) Present() error {
	s.fb.Draw(s.term, uv.Rect(0, 0, s.cols, s.rows))
	if err := s.term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
