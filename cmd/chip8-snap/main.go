// Command chip8-snap runs a program without a window and writes the final
// display contents to a PNG file.
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/cpu"
	"github.com/hexaflex/chip8/snapshot"
)

func main() {
	if err := run(parseArgs()); err != nil {
		log.Fatal(err)
	}
}

func run(config *Config) error {
	program, err := os.ReadFile(config.Program)
	if err != nil {
		return errors.Wrapf(err, "failed to read program")
	}

	var trace cpu.TraceFunc
	if config.PrintTrace {
		trace = func(i *cpu.Instruction) { log.Println(i) }
	}

	c := cpu.New(trace, cpu.WithSeed(config.Seed))
	if err := c.Startup(); err != nil {
		return err
	}

	defer func() {
		if err := c.Shutdown(); err != nil {
			log.Println(err)
		}
	}()

	if err := c.Load(program); err != nil {
		return errors.Wrapf(err, "failed to load %s", config.Program)
	}

	if err := NewScript(config.Keys).Run(c, config.Ticks, reportError); err != nil {
		log.Println(err)
	}

	fd, err := os.Create(config.Output)
	if err != nil {
		return err
	}

	defer fd.Close()

	if err := snapshot.Encode(fd, c.Display(), snapshot.DefaultPalette, config.Scale); err != nil {
		return err
	}

	log.Println("saved", config.Output)
	return nil
}

func reportError(err error) {
	log.Println(err)
}
