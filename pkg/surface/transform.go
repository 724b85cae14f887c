package surface

import (
	"math"

	"github.com/taigrr/surfplot/pkg/math3d"
)

// View defaults.
const (
	DefaultAz  = 30.0
	DefaultAlt = 30.0

	// MaxZValue caps the flattening factor; at 1 the box height vanishes.
	MaxZValue = 0.999999
)

// DefaultScale shrinks the unit box so any rotation of it fits the
// viewport.
var DefaultScale = [3]float64{1 / math.Sqrt(3), 1 / math.Sqrt(3), 1 / math.Sqrt(3)}

const interpretTolerance = 1e-6

// Transform3D is the 3D view of one call. Whichever way it was built,
// downstream code only reads Scale, Az, Alt and Height.
type Transform3D struct {
	// Matrix maps the unit data box to view space, column-vector form.
	Matrix math3d.Mat4
	Scale  [3]float64

	// Az and Alt use the backend convention (see stream.World3D).
	Az, Alt float64

	ZValue           float64
	UsesCallerMatrix bool
}

// Height returns the box height after flattening.
func (t Transform3D) Height() float64 {
	return t.Scale[2] * (1 - t.ZValue)
}

// NormalizeAltitude reduces alt modulo 360 and fails with ErrRange unless
// the result lies in [0,90]. 450 becomes 90; 95 and -10 fail.
func NormalizeAltitude(alt float64) (float64, error) {
	a := math.Mod(alt, 360)
	if math.IsNaN(a) || a < 0 || a > 90 {
		return 0, newError(CodeRange, "altitude %g restricted to [0,90]", alt)
	}
	return a, nil
}

// BuildTransform returns the view for the given angles (degrees) and
// flattening factor. With a caller matrix (column-vector form) the view is
// recovered from it and the angles are only validated; otherwise the view
// is synthesized from the angles.
func BuildTransform(az, alt, zValue float64, caller *math3d.Mat4) (Transform3D, error) {
	alt, err := NormalizeAltitude(alt)
	if err != nil {
		return Transform3D{}, err
	}
	zValue = math.Min(zValue, MaxZValue)

	if caller != nil {
		cAz, cAlt, scale, err := InterpretMatrix(*caller)
		if err != nil {
			return Transform3D{}, err
		}
		return Transform3D{
			Matrix:           *caller,
			Scale:            scale,
			Az:               backendAz(cAz),
			Alt:              cAlt,
			ZValue:           zValue,
			UsesCallerMatrix: true,
		}, nil
	}

	return Transform3D{
		Matrix: SynthesizeMatrix(az, alt, DefaultScale),
		Scale:  DefaultScale,
		Az:     backendAz(az),
		Alt:    alt,
		ZValue: zValue,
	}, nil
}

// SynthesizeMatrix builds the view of the unit data box: centre it, scale
// it, stand Z up, turn by az about the vertical and tilt by alt towards
// the viewer, then move it back.
func SynthesizeMatrix(az, alt float64, scale [3]float64) math3d.Mat4 {
	half := math3d.V3(0.5, 0.5, 0.5)
	return math3d.Translate(half).
		Mul(viewRotation(az, alt)).
		Mul(math3d.RotateX(math3d.Deg2Rad(-90))).
		Mul(math3d.Scale(math3d.V3(scale[0], scale[1], scale[2]))).
		Mul(math3d.Translate(half.Scale(-1)))
}

func viewRotation(az, alt float64) math3d.Mat4 {
	return math3d.RotateX(math3d.Deg2Rad(alt)).Mul(math3d.RotateY(math3d.Deg2Rad(az)))
}

// InterpretMatrix recovers azimuth, altitude (degrees, caller convention)
// and per-axis scale from a view matrix in column-vector form. It fails
// with ErrTransform for singular or non-finite matrices, reflections, and
// rotations with a roll the view cannot express.
func InterpretMatrix(m math3d.Mat4) (az, alt float64, scale [3]float64, err error) {
	if !m.IsFinite() {
		return 0, 0, scale, newError(CodeTransform, "illegal 3D transformation: non-finite matrix")
	}
	if math.Abs(m.Det3()) < 1e-12 {
		return 0, 0, scale, newError(CodeTransform, "illegal 3D transformation: singular matrix")
	}

	rot := math3d.Identity()
	for col := range 3 {
		c := m.Column(col)
		scale[col] = c.Len()
		c = c.Scale(1 / scale[col])
		rot.Set(0, col, c.X)
		rot.Set(1, col, c.Y)
		rot.Set(2, col, c.Z)
	}

	// rot = Rx(alt) Ry(az) Rx(-90)
	p := rot.Mul(math3d.RotateX(math3d.Deg2Rad(90)))
	az = math3d.Rad2Deg(math.Atan2(p.Get(0, 2), p.Get(0, 0)))
	alt = math3d.Rad2Deg(math.Atan2(p.Get(2, 1), p.Get(1, 1)))

	if !viewRotation(az, alt).ApproxEqual(p, interpretTolerance) {
		return 0, 0, scale, newError(CodeTransform, "illegal 3D transformation: rotation is not an azimuth/altitude view")
	}
	if alt < -interpretTolerance || alt > 90+interpretTolerance {
		return 0, 0, scale, newError(CodeTransform, "illegal 3D transformation: altitude %g outside [0,90]", alt)
	}
	alt = math.Max(0, math.Min(alt, 90))
	return normalizeAz(az), alt, scale, nil
}

// backendAz converts a caller azimuth (counter-clockwise) to the backend's
// clockwise convention.
func backendAz(az float64) float64 {
	return normalizeAz(360 - normalizeAz(az))
}

func normalizeAz(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	if az >= 360 {
		az -= 360
	}
	return az
}
