// painthaus - a rotating house in your terminal, hidden surfaces
// removed the old way: back-to-front painting, no depth buffer.
//
// Controls:
//
//	Space       - Pause/resume the spin
//	+/-         - Speed up / slow down
//	X           - Toggle wireframe mode
//	P           - Save a PNG screenshot
//	R           - Reset spin and speed
//	?           - Toggle HUD overlay
//	Esc/Q       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/painthaus/painthaus/pkg/house"
	"github.com/painthaus/painthaus/pkg/painter"
	"github.com/painthaus/painthaus/pkg/render"
)

var (
	targetFPS  = flag.Int("fps", 60, "Target FPS")
	bgColor    = flag.String("bg", "30,30,40", "Background color (R,G,B)")
	spinRate   = flag.Float64("speed", 0.5, "Spin rate in radians per second")
	exportPath = flag.String("export", "", "Write the house mesh as a GLB file and exit")
	shotDir    = flag.String("shots", ".", "Directory for PNG screenshots")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "painthaus - painter's algorithm house demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: painthaus [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Space       - Pause/resume\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Adjust speed\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  P           - Screenshot\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  Esc/Q       - Quit\n")
	}
	flag.Parse()

	if *exportPath != "" {
		if err := house.ExportGLB(house.Build(), *exportPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (16 triangles)\n", *exportPath)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// SpinState eases the playback speed toward its target with a spring
// so +/- feel smooth instead of stepping.
type SpinState struct {
	Paused bool
	Target float64 // Speed multiplier the user asked for
	speed  float64 // Current eased multiplier
	vel    float64
	spring harmonica.Spring

	// Model time in seconds; rotation stays a pure function of this,
	// so pausing just stops the clock instead of accumulating an angle.
	Time float64
}

// NewSpinState creates spin playback state for the given frame rate.
func NewSpinState(fps int) *SpinState {
	return &SpinState{
		Target: 1,
		speed:  1,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the model clock by dt, easing speed to its target.
func (s *SpinState) Update(dt float64) {
	s.speed, s.vel = s.spring.Update(s.speed, s.vel, s.Target)
	if !s.Paused {
		s.Time += dt * s.speed
	}
}

// Speed returns the current eased speed multiplier.
func (s *SpinState) Speed() float64 {
	return s.speed
}

// Reset rewinds the clock and restores normal speed.
func (s *SpinState) Reset() {
	s.Time = 0
	s.Target = 1
	s.speed = 1
	s.vel = 0
	s.Paused = false
}

// HUD renders an overlay with renderer state.
type HUD struct {
	polyCount int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	Show      bool
}

// NewHUD creates a new HUD.
func NewHUD(polyCount int) *HUD {
	return &HUD{
		polyCount: polyCount,
		fpsTime:   time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal.
func (h *HUD) Render(width, height int, spin *SpinState, wireframe bool) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows so toggling off works.
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !h.Show {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	title := "painthaus"
	titleCol := max((width-len(title))/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, title, reset)

	polyCol := max(width-12, 1)
	fmt.Printf("%s%s%s%s %d tris %s", moveTo(1, polyCol), bgBlack, fgCyan, bold, h.polyCount, reset)

	state := "spinning"
	if spin.Paused {
		state = "paused"
	}
	mode := "solid"
	if wireframe {
		mode = "wireframe"
	}
	fmt.Printf("%s%s%s %s  %.2fx  %s %s", moveTo(height, 1), bgBlack, fgWhite, state, spin.Speed(), mode, reset)
}

func run() error {
	var bgR, bgG, bgB uint8 = 30, 30, 40
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	surface := render.NewTerminalSurface(term, width, height)
	surface.SetBackground(render.RGB(bgR, bgG, bgB))

	mesh := house.Build()
	driver := painter.NewDriver(mesh, surface)
	driver.SetSpinRate(*spinRate)

	spin := NewSpinState(*targetFPS)
	hud := NewHUD(mesh.TriangleCount())

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var takeShot bool

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				surface.Resize(width, height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("space"):
					spin.Paused = !spin.Paused
				case ev.MatchString("+", "="):
					spin.Target = math.Min(4, spin.Target+0.25)
				case ev.MatchString("-", "_"):
					spin.Target = math.Max(0, spin.Target-0.25)
				case ev.MatchString("x"):
					surface.SetWireframe(!surface.Wireframe())
				case ev.MatchString("p"):
					takeShot = true
				case ev.MatchString("r"):
					spin.Reset()
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					hud.Show = !hud.Show
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		spin.Update(dt)

		if err := driver.Tick(spin.Time); err != nil {
			cleanup()
			return fmt.Errorf("render: %w", err)
		}

		if takeShot {
			takeShot = false
			name := fmt.Sprintf("painthaus-%d.png", time.Now().Unix())
			// Failure here is not worth tearing the loop down for.
			_ = surface.Framebuffer().SavePNG(filepath.Join(*shotDir, name))
		}

		hud.UpdateFPS()
		hud.Render(width, height, spin, surface.Wireframe())

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
