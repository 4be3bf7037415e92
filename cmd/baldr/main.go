package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	baldr "github.com/esimov/baldr/core"
	"github.com/esimov/baldr/utils"
	"golang.org/x/term"
)

const banner = `
┌┐ ┌─┐┬  ┌┬┐┬─┐
├┴┐├─┤│   ││├┬┘
└─┘┴ ┴┴─┘─┴┘┴└─

Mosaic pictures out of the palette of an image.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// swatchName is the file name of the palette swatch written next to the pictures.
const swatchName = "palette.png"

const (
	// message colors
	successColor = "\x1b[92m"
	errorColor   = "\x1b[31m"
	defaultColor = "\x1b[0m"
)

// Version indicates the current build version.
var Version string

// intFlag is an integer flag which rejects values outside of its range.
type intFlag struct {
	value int
	rng   baldr.Range
}

func newIntFlag(value int, rng baldr.Range) *intFlag {
	return &intFlag{value: value, rng: rng}
}

func (f *intFlag) String() string {
	if f == nil {
		return ""
	}
	return strconv.Itoa(f.value)
}

func (f *intFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("not a number")
	}
	if !f.rng.Contains(v) {
		return fmt.Errorf("must be within %s", f.rng)
	}
	f.value = v
	return nil
}

// options holds the settings of a single run.
type options struct {
	source   string
	workDir  string
	method   baldr.Method
	cfg      baldr.Config
	test     bool
	swatch   bool
	progress bool
	show     func(image.Image) error
}

func main() {
	var (
		// Flags
		source   = flag.String("in", "", "Source image, - reads it from stdin")
		width    = newIntFlag(10, baldr.SquaresRange)
		height   = newIntFlag(10, baldr.SquaresRange)
		square   = newIntFlag(128, baldr.SquareSizeRange)
		colors   = newIntFlag(10, baldr.ColorsRange)
		pictures = newIntFlag(5, baldr.PicturesRange)
		workers  = newIntFlag(min(runtime.NumCPU(), baldr.WorkersRange.Max), baldr.WorkersRange)
		method   = flag.String("palette", "table", "Palette extraction method: table|dominant|kmeans")
		seed     = flag.Int64("seed", 0, "Random seed, 0 picks a time based one")
		test     = flag.Bool("test", false, "Generate and open a single picture instead of saving the batch")
		swatch   = flag.Bool("swatch", false, "Save the extracted palette into the output directory")
	)
	flag.Var(width, "width", "Number of squares on the horizontal axis "+baldr.SquaresRange.String())
	flag.Var(height, "height", "Number of squares on the vertical axis "+baldr.SquaresRange.String())
	flag.Var(square, "square", "Pixels in each square "+baldr.SquareSizeRange.String())
	flag.Var(colors, "colors", "Number of colors to use "+baldr.ColorsRange.String())
	flag.Var(pictures, "pictures", "Number of pictures to generate "+baldr.PicturesRange.String())
	flag.Var(workers, "workers", "Number of pictures generated in parallel "+baldr.WorkersRange.String())

	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, banner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*source) == 0 {
		log.Fatal("Usage: baldr -in input.jpg -width 10 -height 10 -square 128 -colors 10 -pictures 5")
	}

	m, err := baldr.ParseMethod(*method)
	if err != nil {
		log.Fatalf("%s%v%s", errorColor, err, defaultColor)
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Unable to get the working directory: %v", err)
	}

	opts := options{
		source:  *source,
		workDir: wd,
		method:  m,
		cfg: baldr.Config{
			SquaresX:    width.value,
			SquaresY:    height.value,
			SquareSize:  square.value,
			NumColors:   colors.value,
			NumPictures: pictures.value,
			Workers:     workers.value,
			Seed:        *seed,
		},
		test:     *test,
		swatch:   *swatch,
		progress: term.IsTerminal(int(os.Stderr.Fd())),
		show: func(img image.Image) error {
			path, err := utils.ShowImage(img)
			if err != nil {
				return err
			}
			log.Printf("Preview saved as: %s", path)
			return nil
		},
	}

	start := time.Now()
	dir, err := run(opts)
	if err != nil {
		log.Fatalf("%sError: %v%s", errorColor, err, defaultColor)
	}
	if !opts.test {
		log.Printf("\nGenerated %s%d%s pictures in %s 🍺", successColor, opts.cfg.NumPictures, defaultColor, dir)
	}
	log.Printf("Execution time: %s%.2fs%s", successColor, time.Since(start).Seconds(), defaultColor)
}

// run generates the pictures described by opts. In batch mode the pictures
// are saved into a new directory named after the source image, whose path
// is returned.
func run(opts options) (string, error) {
	src, err := openSource(opts.source)
	if err != nil {
		return "", fmt.Errorf("unable to open the source image: %w", err)
	}

	palette, err := baldr.ExtractPalette(src, opts.method, opts.cfg.NumColors)
	if err != nil {
		return "", err
	}

	gen, err := baldr.NewGenerator(opts.cfg, palette)
	if err != nil {
		return "", err
	}

	if opts.test {
		log.Println("Generating a single picture")
		return "", gen.Preview(opts.show)
	}

	dir, err := utils.UniquePath(filepath.Join(opts.workDir, sourceStem(opts.source)))
	if err != nil {
		return "", err
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		return "", fmt.Errorf("unable to create the output directory: %w", err)
	}

	if opts.swatch {
		if err := utils.SavePalette(palette.Distinct(), 64, filepath.Join(dir, swatchName)); err != nil {
			return dir, fmt.Errorf("unable to save the palette: %w", err)
		}
	}

	var (
		ind  *utils.ProgressIndicator
		done func(baldr.Result)
	)
	if opts.progress {
		ind = utils.NewProgressIndicator("Generating pictures...", opts.cfg.NumPictures, time.Millisecond*100)
		ind.Start()
		done = func(baldr.Result) { ind.Increment() }
	}

	err = gen.Run(context.Background(), dir, done)
	if ind != nil {
		if err != nil {
			ind.StopMsg = fmt.Sprintf("Generating pictures... %sfailed ✗%s\n", errorColor, defaultColor)
		} else {
			ind.StopMsg = fmt.Sprintf("Generating pictures... %sfinished ✔%s\n", successColor, defaultColor)
		}
		ind.Stop()
	}
	return dir, err
}

// openSource decodes the source image, reading it from stdin when source is pipeName.
func openSource(source string) (image.Image, error) {
	if source == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return baldr.DecodeImage(os.Stdin)
	}
	return baldr.GetImage(source)
}

// sourceStem returns the name of the output directory for source.
func sourceStem(source string) string {
	if source == pipeName {
		return "stdin"
	}
	return utils.Stem(source)
}
