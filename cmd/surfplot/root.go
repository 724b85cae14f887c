package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taigrr/surfplot/pkg/models"
	"github.com/taigrr/surfplot/pkg/plotstate"
	"github.com/taigrr/surfplot/pkg/render"
	"github.com/taigrr/surfplot/pkg/stream"
	"github.com/taigrr/surfplot/pkg/surface"
)

// Options holds the command line flags.
type Options struct {
	Verbose  bool
	Keywords string
	Grid     string
	PNG      string
	Size     string
	Trace    bool
	FPS      int

	Az, Ax, ZValue   float64
	Bottom           int
	XLog, YLog, ZLog bool

	Shade, Skirt, Horizontal bool
	UpperOnly, LowerOnly     bool
	NoData, NoErase          bool
}

// NewRootCommand creates the surfplot command.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "surfplot [flags] <data>",
		Short: "Draw a 3D wire-mesh surface",
		Long: `Draw a wire-mesh surface with hidden lines removed.

<data> is "demo", a YAML grid file ({z: [[...]], x: [...], y: [...]})
or a glTF binary mesh resampled to --grid cells. Without --png or --trace
the surface is shown in the terminal: arrows or WASD spin it, r resets
the view, q or Esc quits.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return NewExitError(ExitCommandError, fmt.Sprintf("expected one data source, got %d", len(args)))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd.ErrOrStderr(), opts.Verbose)
			if opts.Trace && opts.PNG != "" {
				return NewExitError(ExitCommandError, "--trace and --png are exclusive")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	f := cmd.Flags()
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	f.StringVarP(&opts.Keywords, "keywords", "k", "", "YAML keyword file")
	f.StringVar(&opts.Grid, "grid", "48x32", "mesh resampling grid NXxNY")
	f.StringVar(&opts.PNG, "png", "", "write the plot to a PNG file")
	f.StringVar(&opts.Size, "size", "800x600", "PNG size WxH")
	f.BoolVar(&opts.Trace, "trace", false, "print the backend call trace")
	f.IntVar(&opts.FPS, "fps", 30, "terminal viewer frame rate")

	f.Float64Var(&opts.Az, "az", surface.DefaultAz, "azimuth in degrees")
	f.Float64Var(&opts.Ax, "ax", surface.DefaultAlt, "altitude in degrees")
	f.Float64Var(&opts.ZValue, "zvalue", 0, "height of the z=0 plane in the box")
	f.IntVar(&opts.Bottom, "bottom", 0, "color index of the underside")
	f.BoolVar(&opts.XLog, "xlog", false, "logarithmic x axis")
	f.BoolVar(&opts.YLog, "ylog", false, "logarithmic y axis")
	f.BoolVar(&opts.ZLog, "zlog", false, "logarithmic z axis")
	f.BoolVar(&opts.Shade, "shade", false, "color lines by height")
	f.BoolVar(&opts.Skirt, "skirt", false, "draw side walls")
	f.BoolVar(&opts.Horizontal, "horizontal", false, "draw x lines only")
	f.BoolVar(&opts.UpperOnly, "upper-only", false, "draw the upper side only")
	f.BoolVar(&opts.LowerOnly, "lower-only", false, "draw the lower side only")
	f.BoolVar(&opts.NoData, "nodata", false, "draw the axes only")
	f.BoolVar(&opts.NoErase, "noerase", false, "do not erase before drawing")

	return cmd
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	surface.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func run(cmd *cobra.Command, opts *Options, data string) error {
	nx, ny, err := parseSize(opts.Grid)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --grid", err)
	}

	kw, err := buildKeywords(cmd.Flags(), opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "keywords", err)
	}

	g, err := models.Open(data, nx, ny)
	if err != nil {
		return WrapExitError(ExitCommandError, "load data", err)
	}
	args := g.Args()

	switch {
	case opts.Trace:
		rec := stream.NewRecorder()
		if err := surface.Surface(rec, plotstate.New(), args, kw); err != nil {
			return WrapExitError(ExitFailure, "plot", err)
		}
		_, err := io.WriteString(cmd.OutOrStdout(), rec.String())
		return err

	case opts.PNG != "":
		w, h, err := parseSize(opts.Size)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --size", err)
		}
		fb := render.NewFramebuffer(w, h)
		if err := drawPlot(fb, plotstate.New(), args, kw); err != nil {
			return WrapExitError(ExitFailure, "plot", err)
		}
		if err := fb.SavePNG(opts.PNG); err != nil {
			return WrapExitError(ExitFailure, "write png", err)
		}
		surface.Logger().Debug("wrote png", "path", opts.PNG, "width", w, "height", h)
		return nil

	default:
		// Reject bad input before taking over the terminal.
		if err := surface.Surface(stream.NewRecorder(), plotstate.New(), args, kw); err != nil {
			return WrapExitError(ExitFailure, "plot", err)
		}
		if err := runViewer(cmd.Context(), args, kw, opts.FPS); err != nil {
			return WrapExitError(ExitFailure, "viewer", err)
		}
		return nil
	}
}

// drawPlot draws one surface onto fb.
func drawPlot(fb *render.Framebuffer, st *plotstate.State, args []any, kw surface.Keywords) error {
	dev := render.NewDevice(fb, &st.Colors)
	return surface.Surface(dev, st, args, kw)
}

// buildKeywords loads the keyword file, if any, and applies the flags
// given on the command line on top of it.
func buildKeywords(flags *pflag.FlagSet, opts *Options) (surface.Keywords, error) {
	var kw surface.Keywords
	if opts.Keywords != "" {
		var err error
		kw, err = surface.LoadKeywords(opts.Keywords)
		if err != nil {
			return kw, err
		}
	}

	set := flags.Changed
	if set("az") {
		kw.Az = &opts.Az
	}
	if set("ax") {
		kw.Ax = &opts.Ax
	}
	if set("zvalue") {
		kw.ZValue = opts.ZValue
	}
	if set("bottom") {
		kw.Bottom = &opts.Bottom
	}
	if set("xlog") {
		kw.X.Log = opts.XLog
	}
	if set("ylog") {
		kw.Y.Log = opts.YLog
	}
	if set("zlog") {
		kw.Z.Log = opts.ZLog
	}
	if set("shade") {
		kw.Shades = nil
		if opts.Shade {
			kw.Shades = []float64{}
		}
	}
	if set("skirt") {
		kw.Skirt = opts.Skirt
	}
	if set("horizontal") {
		kw.Horizontal = opts.Horizontal
	}
	if set("upper-only") {
		kw.UpperOnly = opts.UpperOnly
	}
	if set("lower-only") {
		kw.LowerOnly = opts.LowerOnly
	}
	if set("nodata") {
		kw.NoData = opts.NoData
	}
	if set("noerase") {
		kw.NoErase = opts.NoErase
	}
	return kw, nil
}

// parseSize parses "WxH" into two positive integers.
func parseSize(s string) (w, h int, err error) {
	var rest string
	n, _ := fmt.Sscanf(s, "%dx%d%s", &w, &h, &rest)
	if n != 2 || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%q: want WxH with positive sizes", s)
	}
	return w, h, nil
}
