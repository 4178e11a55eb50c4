package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/cpu"
	"github.com/hexaflex/chip8/devices/keypad"
)

// DefaultHold is the number of ticks a scripted key stays down
// when no hold time is given.
const DefaultHold = 10

// KeyEvent presses Key at tick Tick and releases it Hold ticks later.
type KeyEvent struct {
	Tick int
	Key  keypad.Key
	Hold int
}

// parseKeys parses a comma separated list of tick:key[:hold] entries.
// Keys are single hexadecimal digits.
func parseKeys(v string) ([]KeyEvent, error) {
	var out []KeyEvent

	for _, field := range strings.Split(v, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		parts := strings.Split(field, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.Errorf("invalid key event %q: want tick:key[:hold]", field)
		}

		tick, err := strconv.Atoi(parts[0])
		if err != nil || tick < 0 {
			return nil, errors.Errorf("invalid key event %q: bad tick", field)
		}

		key, err := strconv.ParseUint(parts[1], 16, 8)
		if err != nil || key >= keypad.KeyCount {
			return nil, errors.Errorf("invalid key event %q: bad key", field)
		}

		hold := DefaultHold
		if len(parts) == 3 {
			hold, err = strconv.Atoi(parts[2])
			if err != nil || hold < 1 {
				return nil, errors.Errorf("invalid key event %q: bad hold", field)
			}
		}

		out = append(out, KeyEvent{Tick: tick, Key: keypad.Key(key), Hold: hold})
	}

	return out, nil
}

// Script replays key events against a cpu, one tick at a time.
type Script struct {
	events []KeyEvent
}

// NewScript creates a script for the given events.
func NewScript(events []KeyEvent) *Script {
	sorted := append([]KeyEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tick < sorted[j].Tick
	})
	return &Script{events: sorted}
}

// Run performs the given number of ticks. Key state is applied before
// each tick. Non-fatal errors are passed to report. A fatal error ends
// the run and is returned.
func (s *Script) Run(c *cpu.CPU, ticks int, report func(error)) error {
	for tick := 0; tick < ticks; tick++ {
		s.apply(c.Keypad(), tick)

		if err := c.Step(); err != nil {
			if cpu.IsFatal(err) {
				return err
			}
			report(err)
		}
	}
	return nil
}

// apply releases keys whose hold time ran out, then presses keys
// scheduled for this tick.
func (s *Script) apply(kp *keypad.State, tick int) {
	for _, e := range s.events {
		if e.Tick+e.Hold == tick {
			kp.Release(e.Key)
		}
	}

	for _, e := range s.events {
		if e.Tick == tick {
			kp.Press(e.Key)
		}
	}
}
