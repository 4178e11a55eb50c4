package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Program    string     // Path to the program image to load.
	Output     string     // Path of the PNG file to write.
	Ticks      int        // Number of interpreter ticks to run.
	Scale      int        // Amount by which each pixel is scaled.
	Seed       int64      // Random seed.
	Keys       []KeyEvent // Scripted key presses.
	PrintTrace bool       // Print instruction trace data?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Output = "chip8.png"
	c.Ticks = 600
	c.Scale = 10
	c.Seed = 1

	flag.Usage = func() {
		fmt.Printf("%s [options] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Output, "out", c.Output, "Output PNG file.")
	flag.IntVar(&c.Ticks, "ticks", c.Ticks, "Number of interpreter ticks to run.")
	flag.IntVar(&c.Scale, "scale", c.Scale, "Pixel scale factor for the output image.")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the random number instruction.")
	flag.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print instruction trace data.")
	keys := flag.String("keys", "", "Comma separated key presses as tick:key[:hold], key in hex.")
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
	if c.Keys, err = parseKeys(*keys); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if c.Scale < 1 {
		c.Scale = 1
	}

	c.Program = flag.Arg(0)
	return &c
}
