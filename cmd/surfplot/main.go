// Command surfplot draws 3D wire-mesh surfaces with hidden lines removed,
// in the terminal or to a PNG file.
//
// Usage:
//
//	surfplot demo
//	surfplot --png ripple.png --skirt --az 60 demo
//	surfplot --keywords plot.yaml terrain.yaml
//	surfplot --grid 64x48 model.glb
//	surfplot --trace data.yaml
//
// Controls in the terminal viewer:
//
//	Arrows/WASD  Spin the view
//	R            Reset the view
//	Q/Esc        Quit
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "surfplot: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}
