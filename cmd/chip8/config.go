package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Config defines program configuration.
type Config struct {
	Program       string     // Path to the program image to load.
	ScaleFactor   int        // Amount by which each pixel is scaled.
	Fullscreen    bool       // Run in fullscreen?
	Debug         bool       // Start paused with trace output enabled.
	PrintTrace    bool       // Print instruction trace data?
	TicksPerFrame int        // Interpreter ticks per 60 Hz frame.
	Seed          int64      // Random seed; 0 picks a new one on every reset.
	Foreground    [3]float32 // Color of set pixels.
	Background    [3]float32 // Color of cleared pixels.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.ScaleFactor = 10
	c.TicksPerFrame = 10

	flag.Usage = func() {
		fmt.Printf("%s [options] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.BoolVar(&c.Debug, "debug", c.Debug, "Start paused in debug mode, with trace output.")
	flag.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print instruction trace data.")
	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the display.")
	flag.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Run the display in fullscreen or windowed mode.")
	flag.IntVar(&c.TicksPerFrame, "ticks-per-frame", c.TicksPerFrame, "Interpreter ticks per 60 Hz frame.")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the random number instruction. 0 uses the clock.")
	fg := flag.String("fg", "ffffff", "Foreground color as rrggbb.")
	bg := flag.String("bg", "000000", "Background color as rrggbb.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	if c.Foreground, err = parseColor(*fg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if c.Background, err = parseColor(*bg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if c.TicksPerFrame < 1 {
		c.TicksPerFrame = 1
	}
	if c.ScaleFactor < 1 {
		c.ScaleFactor = 1
	}

	c.Program = flag.Arg(0)
	c.PrintTrace = c.PrintTrace || c.Debug
	return &c
}

// parseColor parses a hexadecimal rrggbb color into normalized components.
func parseColor(v string) ([3]float32, error) {
	var rgb [3]float32

	v = strings.TrimPrefix(v, "#")
	if len(v) != 6 {
		return rgb, errors.Errorf("invalid color %q: want rrggbb", v)
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return rgb, errors.Wrapf(err, "invalid color %q", v)
	}

	rgb[0] = float32((n>>16)&0xff) / 255
	rgb[1] = float32((n>>8)&0xff) / 255
	rgb[2] = float32(n&0xff) / 255
	return rgb, nil
}
