// Package surface implements the SURFACE plotting command: it draws a 2D
// array of heights as a wire-mesh surface inside a 3D axis box.
//
// A call goes through four stages:
//
//   - argument resolution: the Z array, optionally with X and Y
//     coordinates, becomes a validated [SurfaceInput] plus axis ranges;
//   - range adjustment: min/max value clamps and nice-range widening;
//   - view construction: a [Transform3D] is synthesized from azimuth and
//     altitude, or interpreted from the session's current transform;
//   - drawing: a backend-ready grid is built and a [RenderMode] plan picks
//     the surface primitives, followed by the axis box.
//
// All validation happens before the output stream is touched. Per-call
// drawing-state overrides (character size, line style) are restored on
// every exit path once acquired.
//
// Errors can be matched with errors.Is against the sentinel values:
//
//	err := surface.Surface(dev, state, []any{z}, kw)
//	if errors.Is(err, surface.ErrShape) {
//	    // X, Y and Z dimensions disagree
//	}
package surface
