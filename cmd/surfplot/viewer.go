package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/surfplot/pkg/plotstate"
	"github.com/taigrr/surfplot/pkg/render"
	"github.com/taigrr/surfplot/pkg/surface"
)

// SpinAxis is one view angle with spring-damped angular velocity, in
// degrees per frame.
type SpinAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewSpinAxis creates an axis whose velocity decays back to rest.
func NewSpinAxis(fps int) SpinAxis {
	return SpinAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances one frame.
func (a *SpinAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Impulse adds to the angular velocity.
func (a *SpinAxis) Impulse(v float64) {
	a.Velocity += v
}

// Reset stops the axis at its starting angle.
func (a *SpinAxis) Reset() {
	a.Position, a.Velocity, a.velAccel = 0, 0, 0
}

// ViewState is the interactive view: base angles from the keywords plus
// the spin offsets.
type ViewState struct {
	BaseAz, BaseAlt float64
	Az, Alt         SpinAxis
}

// NewViewState starts at the angles the keywords ask for.
func NewViewState(kw surface.Keywords, fps int) *ViewState {
	v := &ViewState{
		BaseAz:  surface.DefaultAz,
		BaseAlt: surface.DefaultAlt,
		Az:      NewSpinAxis(fps),
		Alt:     NewSpinAxis(fps),
	}
	if kw.Az != nil {
		v.BaseAz = *kw.Az
	}
	if kw.Ax != nil {
		v.BaseAlt = *kw.Ax
	}
	return v
}

// Update advances both axes one frame. The spun altitude is pinned to
// [0, 90] and stops at the limits.
func (v *ViewState) Update() {
	v.Az.Update()
	v.Alt.Update()
	switch alt := v.BaseAlt + v.Alt.Position; {
	case alt > 90:
		v.Alt.Position = 90 - v.BaseAlt
		v.Alt.Velocity = 0
	case alt < 0:
		v.Alt.Position = -v.BaseAlt
		v.Alt.Velocity = 0
	}
}

// Reset returns to the starting view.
func (v *ViewState) Reset() {
	v.Az.Reset()
	v.Alt.Reset()
}

// Angles returns the current azimuth and altitude, with the altitude
// within [0, 90].
func (v *ViewState) Angles() (az, alt float64) {
	alt = min(max(v.BaseAlt+v.Alt.Position, 0), 90)
	return v.BaseAz + v.Az.Position, alt
}

// Keywords returns kw with the current view angles.
func (v *ViewState) Keywords(kw surface.Keywords) surface.Keywords {
	az, alt := v.Angles()
	kw.Az, kw.Ax = &az, &alt
	kw.T3D = false
	kw.NoErase = false
	return kw
}

const spinStep = 2.0 // degrees per frame added by one key press

// handleEvents turns terminal events into view changes on keys and sizes
// on resized. It returns when events closes or ctx is done.
func handleEvents(ctx context.Context, quit context.CancelFunc, events <-chan uv.Event,
	view *ViewState, keys chan<- func(), resized chan uv.Size,
) {
	send := func(f func()) bool {
		select {
		case keys <- f:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		var ev uv.Event
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			ev = e
		}

		ok := true
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			select {
			case <-resized:
			default:
			}
			select {
			case resized <- uv.Size(ev):
			case <-ctx.Done():
				return
			}
		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("q", "escape", "ctrl+c"):
				quit()
				return
			case ev.MatchString("r"):
				ok = send(view.Reset)
			case ev.MatchString("w", "up"):
				ok = send(func() { view.Alt.Impulse(spinStep) })
			case ev.MatchString("s", "down"):
				ok = send(func() { view.Alt.Impulse(-spinStep) })
			case ev.MatchString("a", "left"):
				ok = send(func() { view.Az.Impulse(-spinStep) })
			case ev.MatchString("d", "right"):
				ok = send(func() { view.Az.Impulse(spinStep) })
			}
		}
		if !ok {
			return
		}
	}
}

func runViewer(parent context.Context, args []any, kw surface.Keywords, fps int) error {
	if fps <= 0 {
		fps = 30
	}

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
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	view := NewViewState(kw, fps)
	resized := make(chan uv.Size, 1)
	keys := make(chan func(), 16)
	go handleEvents(ctx, cancel, term.Events(), view, keys, resized)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	fb := render.NewFramebuffer(width, height*2)
	st := plotstate.New()
	frame := time.NewTicker(time.Second / time.Duration(fps))
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case size := <-resized:
			width, height = size.Width, size.Height
			term.Erase()
			if err := term.Resize(width, height); err != nil {
				return fmt.Errorf("resize terminal: %w", err)
			}
			fb = render.NewFramebuffer(width, height*2)
		case apply := <-keys:
			apply()
		case <-frame.C:
			view.Update()
			if err := drawPlot(fb, st, args, view.Keywords(kw)); err != nil {
				return err
			}
			fb.Draw(term, uv.Rect(0, 0, width, height))
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
