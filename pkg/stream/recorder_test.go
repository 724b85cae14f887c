package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptString(t *testing.T) {
	tests := []struct {
		opt  Opt
		want string
	}{
		{0, "none"},
		{DrawLineX, "linex"},
		{DrawLineXY, "linex|liney"},
		{DrawLineXY | MagColor | DrawSides, "linex|liney|mag|sides"},
		{DrawLineY | DrawSides, "liney|sides"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.opt.String())
	}
}

func TestOptHas(t *testing.T) {
	assert.True(t, DrawLineXY.Has(DrawLineX))
	assert.True(t, DrawLineXY.Has(DrawLineXY))
	assert.False(t, DrawLineX.Has(DrawLineXY))
	assert.False(t, DrawLineXY.Has(DrawSides))
}

func TestRecorderTrace(t *testing.T) {
	r := NewRecorder()
	g := Grid{X: []float64{0, 1, 2}, Y: []float64{0, 1}, Z: [][]float64{{0, 1}, {2, 3}, {4, 5}}}

	r.Background(3)
	r.NextPlot(false)
	r.NextPlot(true)
	r.CharSize(1.5)
	r.LineStyle(LineSolid)
	require.True(t, r.Viewport3D(Box3D{XMax: 1, YMax: 1, ZMax: 1}))
	r.World3D(World3D{Alt: 30, Az: 330})
	require.True(t, r.StartClip(0.1, 0.2, 0.9, 1))
	r.Color(255)
	r.MeshC(g, DrawLineXY)
	r.PenBackground()
	r.Plot3DC(g, DrawLineX|DrawSides)
	r.StopClip()
	r.Box3(AxisBox{})

	want := "background 3\n" +
		"nextplot erase\n" +
		"nextplot noerase\n" +
		"charsize 1.5\n" +
		"linestyle 1\n" +
		"viewport3d ok\n" +
		"world3d alt=30 az=330\n" +
		"startclip 0.1,0.2,0.9,1\n" +
		"color 255\n" +
		"meshc 3x2 opt=linex|liney\n" +
		"color background\n" +
		"plot3dc 3x2 opt=linex|sides\n" +
		"stopclip\n" +
		"box3\n"
	assert.Equal(t, want, r.String())

	meshes := r.Find("meshc")
	require.Len(t, meshes, 1)
	assert.Equal(t, g, meshes[0].Grid)
	assert.Equal(t, DrawLineXY, meshes[0].Opt)

	worlds := r.Find("world3d")
	require.Len(t, worlds, 1)
	assert.Equal(t, 330.0, worlds[0].World.Az)

	assert.Empty(t, r.Find("missing"))
	assert.Equal(t, "background", r.Ops()[0])
	assert.Len(t, r.Ops(), 14)
}

func TestRecorderFailures(t *testing.T) {
	r := &Recorder{FailViewport: true, RefuseClip: true}
	assert.False(t, r.Viewport3D(Box3D{}))
	assert.False(t, r.StartClip(0, 0, 1, 1))
	assert.Equal(t, "viewport3d degenerate\nstartclip refused\n", r.String())
}
