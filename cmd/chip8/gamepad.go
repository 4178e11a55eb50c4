package main

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hexaflex/chip8/devices/keypad"
)

// padmap maps gamepad buttons to keypad keys. The d-pad drives the
// 2/4/6/8 directions most programs use.
var padmap = map[glfw.GamepadButton]keypad.Key{
	glfw.ButtonDpadUp:    0x2,
	glfw.ButtonDpadLeft:  0x4,
	glfw.ButtonDpadRight: 0x6,
	glfw.ButtonDpadDown:  0x8,
	glfw.ButtonA:         0x5,
	glfw.ButtonB:         0x0,
	glfw.ButtonX:         0xa,
	glfw.ButtonY:         0xb,
	glfw.ButtonBack:      0xe,
	glfw.ButtonStart:     0xf,
}

// Gamepad feeds the first connected gamepad into a keypad.
type Gamepad struct {
	keypad    *keypad.State
	joy       glfw.Joystick
	pressed   [glfw.ButtonLast + 1]bool
	connected bool
}

// NewGamepad creates a gamepad adapter for the given keypad.
func NewGamepad(kp *keypad.State) *Gamepad {
	return &Gamepad{keypad: kp}
}

// Startup detects any connected gamepad and watches for new ones.
func (g *Gamepad) Startup() {
	glfw.SetJoystickCallback(g.configure)

	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() && joy.IsGamepad() {
			g.configure(joy, glfw.Connected)
			break
		}
	}
}

// Shutdown stops watching for gamepads.
func (g *Gamepad) Shutdown() {
	glfw.SetJoystickCallback(nil)
	g.releaseAll()
}

// Update polls the gamepad and forwards button edges to the keypad.
func (g *Gamepad) Update() {
	if !g.connected {
		return
	}

	state := g.joy.GetGamepadState()
	if state == nil {
		return
	}

	for btn, key := range padmap {
		pressed := state.Buttons[btn] == glfw.Press
		if pressed == g.pressed[btn] {
			continue
		}

		g.pressed[btn] = pressed
		if pressed {
			g.keypad.Press(key)
		} else {
			g.keypad.Release(key)
		}
	}
}

// configure is called whenever a joystick is connected or disconnected from the system.
func (g *Gamepad) configure(joy glfw.Joystick, event glfw.PeripheralEvent) {
	if event == glfw.Connected && !joy.IsGamepad() {
		return
	}
	if event == glfw.Disconnected && joy != g.joy {
		return
	}

	g.releaseAll()
	g.joy = joy
	g.connected = event == glfw.Connected

	if g.connected {
		log.Println("gamepad connected:", joy.GetGamepadName())
	} else {
		log.Println("gamepad disconnected")
	}
}

// releaseAll releases the keys held through the gamepad.
func (g *Gamepad) releaseAll() {
	for btn, key := range padmap {
		if g.pressed[btn] {
			g.keypad.Release(key)
			g.pressed[btn] = false
		}
	}
}
