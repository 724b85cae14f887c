package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/surfplot/pkg/surface"
)

func TestSpinAxisDecays(t *testing.T) {
	a := NewSpinAxis(30)
	a.Impulse(5)
	a.Update()
	assert.Equal(t, 5.0, a.Position)
	assert.Less(t, a.Velocity, 5.0)

	for range 300 {
		a.Update()
	}
	assert.InDelta(t, 0, a.Velocity, 1e-3)
	settled := a.Position
	a.Update()
	assert.InDelta(t, settled, a.Position, 1e-3)

	a.Reset()
	assert.Zero(t, a.Position)
	assert.Zero(t, a.Velocity)
}

func TestViewStateStartsAtKeywordAngles(t *testing.T) {
	v := NewViewState(surface.Keywords{}, 30)
	az, alt := v.Angles()
	assert.Equal(t, surface.DefaultAz, az)
	assert.Equal(t, surface.DefaultAlt, alt)

	a, x := 120.0, 45.0
	v = NewViewState(surface.Keywords{Az: &a, Ax: &x}, 30)
	az, alt = v.Angles()
	assert.Equal(t, 120.0, az)
	assert.Equal(t, 45.0, alt)
}

func TestViewStateClampsAltitude(t *testing.T) {
	v := NewViewState(surface.Keywords{}, 30)
	v.Alt.Position = 200
	_, alt := v.Angles()
	assert.Equal(t, 90.0, alt)
	assert.Equal(t, 200.0, v.Alt.Position, "Angles must not change the view")

	v.Alt.Velocity = 3
	v.Update()
	assert.Equal(t, 60.0, v.Alt.Position)
	assert.Zero(t, v.Alt.Velocity)
	_, alt = v.Angles()
	assert.Equal(t, 90.0, alt)

	v.Alt.Position = -100
	v.Update()
	assert.Equal(t, -30.0, v.Alt.Position)
	_, alt = v.Angles()
	assert.Equal(t, 0.0, alt)
}

func TestViewStateKeywords(t *testing.T) {
	v := NewViewState(surface.Keywords{}, 30)
	v.Az.Position = 15

	kw := surface.Keywords{T3D: true, NoErase: true, Skirt: true}
	got := v.Keywords(kw)
	require.NotNil(t, got.Az)
	require.NotNil(t, got.Ax)
	assert.Equal(t, 45.0, *got.Az)
	assert.Equal(t, 30.0, *got.Ax)
	assert.False(t, got.T3D)
	assert.False(t, got.NoErase)
	assert.True(t, got.Skirt)

	assert.Nil(t, kw.Az)
	assert.True(t, kw.T3D)

	v.Reset()
	az, _ := v.Angles()
	assert.Equal(t, surface.DefaultAz, az)
}

func key(r rune) uv.KeyPressEvent {
	return uv.KeyPressEvent{Code: r, Text: string(r)}
}

func TestHandleEventsKeys(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan uv.Event, 4)
	events <- key('d')
	events <- key('w')
	events <- key('x')
	events <- key('q')

	view := NewViewState(surface.Keywords{}, 30)
	keys := make(chan func(), 16)
	handleEvents(ctx, cancel, events, view, keys, make(chan uv.Size, 1))

	require.Len(t, keys, 2)
	for len(keys) > 0 {
		(<-keys)()
	}
	assert.Equal(t, spinStep, view.Az.Velocity)
	assert.Equal(t, spinStep, view.Alt.Velocity)
	assert.Error(t, ctx.Err(), "q should quit")
}

func TestHandleEventsKeepsLatestSize(t *testing.T) {
	events := make(chan uv.Event, 2)
	events <- uv.WindowSizeEvent{Width: 80, Height: 24}
	events <- uv.WindowSizeEvent{Width: 100, Height: 30}
	close(events)

	resized := make(chan uv.Size, 1)
	handleEvents(context.Background(), func() {}, events, NewViewState(surface.Keywords{}, 30), make(chan func()), resized)

	require.Len(t, resized, 1)
	assert.Equal(t, uv.Size{Width: 100, Height: 30}, <-resized)
}

func TestHandleEventsReturnsWhenKeysAreFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan uv.Event, 4)
	for range 4 {
		events <- key('d')
	}

	keys := make(chan func(), 1)
	done := make(chan struct{})
	go func() {
		handleEvents(ctx, cancel, events, NewViewState(surface.Keywords{}, 30), keys, make(chan uv.Size, 1))
		close(done)
	}()

	require.Eventually(t, func() bool { return len(keys) == 1 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event handler still blocked after the viewer stopped")
	}
}
