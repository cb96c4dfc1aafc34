package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	artpaint "github.com/HaikuArchives/ArtPaint-sub001"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/resample"
)

// app holds the global flags and streams shared by every command.
type app struct {
	stdout, stderr io.Writer

	input    string
	output   string
	verbose  bool
	quiet    bool
	workers  int
	selRect  rectValue
	maskPath string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "artpaint",
		Short:         "Apply pixel operations to raster images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.setupLogging()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.input, "input", "i", "", "input image (png, jpeg, gif, bmp, tiff)")
	pf.StringVarP(&a.output, "output", "o", "", "output image; the format follows the extension")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug diagnostics to stderr")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress the progress bar and summary")
	pf.IntVarP(&a.workers, "workers", "w", 0, "number of parallel bands (default: number of CPUs)")
	pf.Var(&a.selRect, "select", "restrict the operation to a rectangle")
	pf.StringVar(&a.maskPath, "mask", "", "restrict the operation to the opaque pixels of an image")
	root.MarkFlagsMutuallyExclusive("select", "mask")

	root.AddCommand(
		a.flipCmd(),
		a.rotateCmd(),
		a.cropCmd(),
		a.scaleCmd(),
		a.canvasCmd(),
		a.translateCmd(),
		a.fillCmd(),
		a.gradientCmd(),
		a.filterCmd(),
		a.infoCmd(),
	)
	return root
}

func (a *app) setupLogging() {
	if !a.verbose {
		return
	}
	artpaint.SetLogger(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// load reads the input image.
func (a *app) load() (*artpaint.Bitmap, error) {
	if a.input == "" {
		return nil, errors.New("no input image (use -i)")
	}
	return artpaint.Load(a.input)
}

// selection builds the selection from --select or --mask. A mask image of
// a different size is resampled to the bitmap with nearest-neighbour
// sampling, which keeps hard selection edges.
func (a *app) selection(b *artpaint.Bitmap) (artpaint.Selection, error) {
	if a.selRect.set && a.maskPath != "" {
		return nil, errors.New("--select and --mask cannot be combined")
	}
	if a.selRect.set {
		return artpaint.RectSelection(a.selRect.r), nil
	}
	if a.maskPath == "" {
		return nil, nil
	}
	f, err := os.Open(a.maskPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mb, err := artpaint.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mask %s: %w", a.maskPath, err)
	}
	img := mb.ToNRGBA()
	if mb.Width() != b.Width() || mb.Height() != b.Height() {
		img = resample.ScaleImage(img, b.Width(), b.Height(), resample.NearestNeighbor)
	}
	return mask.FromAlpha(img), nil
}

// run loads the input, applies the request built by build, and saves the
// result.
func (a *app) run(cmd *cobra.Command, build func(b *artpaint.Bitmap, req *artpaint.Request) error) error {
	if a.output == "" {
		return errors.New("no output image (use -o)")
	}
	b, err := a.load()
	if err != nil {
		return err
	}
	sel, err := a.selection(b)
	if err != nil {
		return err
	}
	req := artpaint.Request{Selection: sel}
	if err := build(b, &req); err != nil {
		return err
	}

	opts := []artpaint.Option{artpaint.WithWorkers(a.workers)}
	bar := newProgressBar(a.stderr, a.quiet)
	if bar != nil {
		opts = append(opts, artpaint.WithProgress(bar.Add))
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	before := b.Rect().Size()
	start := time.Now()
	out, err := artpaint.Apply(ctx, b, req, opts...)
	bar.Done()
	if err != nil {
		return err
	}
	if err := out.Save(a.output); err != nil {
		return err
	}
	if !a.quiet {
		newPrinter().summary(a.stdout, req.Op, before, out.Rect().Size(), time.Since(start))
	}
	return nil
}

// signalContext is canceled on interrupt.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt)
}
