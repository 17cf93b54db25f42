package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"zoomchart/internal/chart"
	"zoomchart/internal/config"
	"zoomchart/internal/dataset"
	"zoomchart/internal/obs"
	"zoomchart/internal/plot"
	"zoomchart/internal/render"
)

type exportOptions struct {
	dataset   int
	output    string
	format    string
	zoom      float64
	crosshair string
}

func newSVGCmd(cfg *config.Config) *cobra.Command {
	opts := exportOptions{format: string(render.FormatSVG), zoom: 1}
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Export a dataset as a static chart",
		Long: `svg draws one bundled dataset the way the interactive chart shows it,
optionally zoomed about the plot centre and with the crosshair pinned at a
point of the plotting area.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := obs.InitLogger(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closeLog()
			return runExport(*cfg, dataset.Default(), opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&opts.dataset, "dataset", 1, "Dataset key to draw")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "Output format: svg or png")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", opts.zoom, "Zoom factor about the plot centre (0-20)")
	cmd.Flags().StringVar(&opts.crosshair, "crosshair", "", "Pin the crosshair at X,Y pixels inside the plotting area")
	cmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "Surface width in pixels")
	cmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "Surface height in pixels")
	cmd.Flags().StringVar(&cfg.XField, "x-field", cfg.XField, "Record field for the x axis")
	cmd.Flags().StringVar(&cfg.YField, "y-field", cfg.YField, "Record field for the y axis")
	return cmd
}

// runExport builds the widget for opts and writes its scene to opts.output,
// or to stdout when no output path is set.
func runExport(cfg config.Config, reg *dataset.Registry, opts exportOptions, stdout io.Writer) error {
	f, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	d, ok := reg.Lookup(opts.dataset)
	if !ok {
		return fmt.Errorf("unknown dataset %d", opts.dataset)
	}
	ccfg := chart.Config{
		Data:   d.Records,
		XField: cfg.XField,
		YField: cfg.YField,
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
	}
	if err := chart.Validate(ccfg); err != nil {
		return err
	}

	w := chart.New(ccfg)
	iw, ih := w.InnerSize()
	if opts.zoom != 1 {
		if opts.zoom <= plot.MinZoom || opts.zoom > plot.MaxZoom {
			return fmt.Errorf("zoom %v out of range (%v, %v]", opts.zoom, plot.MinZoom, plot.MaxZoom)
		}
		w.ToggleZoom()
		w.ZoomBy(opts.zoom, iw/2, ih/2)
	}
	if opts.crosshair != "" {
		x, y, err := parsePoint(opts.crosshair)
		if err != nil {
			return err
		}
		if !w.Contains(x, y) {
			return fmt.Errorf("crosshair %v,%v outside plotting area %vx%v", x, y, iw, ih)
		}
		w.ToggleCrosshair()
		w.PointerMove(x, y)
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, w.Scene(), f); err != nil {
		return err
	}
	obs.Logger.Info("exported chart", "dataset", d.Label, "format", f, "bytes", buf.Len())
	if opts.output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// parsePoint reads "X,Y".
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("crosshair %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("crosshair %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("crosshair %q: %w", s, err)
	}
	return x, y, nil
}
