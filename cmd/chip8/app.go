package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/cpu"
	"github.com/hexaflex/chip8/devices/display"
	"github.com/hexaflex/chip8/snapshot"
	"github.com/hexaflex/chip8/translate"
)

var f = translate.From

// frameTime is the presentation and timer cadence.
const frameTime = time.Second / 60

// App defines application context.
type App struct {
	config       *Config        // Application configuration.
	window       *glfw.Window   // OpenGL/GLFW context.
	cpu          *CPUController // VM with program to be run.
	machine      *cpu.CPU       // The interpreter itself.
	renderer     *Renderer      // Framebuffer renderer.
	gamepad      *Gamepad       // Optional gamepad input.
	titleUpdated time.Time      // Value used to periodically update window title.
	lastRendered time.Time      // Last time a frame was rendered.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var opts []cpu.Option
	if config.Seed != 0 {
		opts = append(opts, cpu.WithSeed(config.Seed))
	}

	var a App
	a.config = config
	a.machine = cpu.New(a.printTrace, opts...)
	a.cpu = NewCPUController(a.machine, config.TicksPerFrame)
	a.renderer = NewRenderer(config.Foreground, config.Background)
	a.gamepad = NewGamepad(a.machine.Keypad())
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())
	printHelp()

	if err := a.cpu.Startup(); err != nil {
		return err
	}

	if err := a.loadProgram(); err != nil {
		return err
	}

	a.gamepad.Startup()

	if !a.config.Debug {
		a.cpu.Start()
	}

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop runs one frame: a batch of interpreter ticks, then presentation.
func (a *App) mainLoop() {
	if wait := frameTime - time.Since(a.lastRendered); wait > 0 {
		glfw.WaitEventsTimeout(wait.Seconds())
		return
	}
	a.lastRendered = time.Now()
	a.gamepad.Update()

	if a.cpu.Running() {
		if err := a.cpu.Frame(a.reportError); err != nil {
			log.Println(err)
		}
	}

	a.present()

	// Periodically update the window title to show the current tick frequency.
	if time.Since(a.titleUpdated) >= time.Second {
		a.titleUpdated = time.Now()
		a.updateTitle()
	}

	glfw.PollEvents()
}

// present uploads the framebuffer if it changed and draws it.
func (a *App) present() {
	if d := a.machine.Display(); d.Dirty() {
		a.renderer.Upload(d)
		d.ClearDirty()
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)
	a.renderer.Draw()
	a.window.SwapBuffers()
}

func (a *App) updateTitle() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s - %s", AppName, AppVersion, prettyFrequency(a.cpu.Frequency()))

	switch state := a.machine.State(); {
	case state == cpu.Halted:
		sb.WriteString(" - " + f("halted"))
	case !a.cpu.Running():
		sb.WriteString(" - " + f("paused"))
	case state == cpu.KeyWait:
		sb.WriteString(" - " + f("waiting for key"))
	}

	if a.machine.SoundTimer() > 0 {
		sb.WriteString(" - ♪")
	}

	a.window.SetTitle(sb.String())
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	a.cpu.Stop()
	a.gamepad.Shutdown()
	if err := a.cpu.Shutdown(); err != nil {
		log.Println(err)
	}

	a.renderer.Dispose()

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if k, ok := mapKey(key); ok {
		switch action {
		case glfw.Press:
			a.machine.Keypad().Press(k)
		case glfw.Release:
			a.machine.Keypad().Release(k)
		}
		return
	}

	if action != glfw.Press {
		return
	}

	var err error

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF2:
		a.config.Debug = !a.config.Debug
		a.config.PrintTrace = a.config.Debug
		if a.config.Debug {
			a.cpu.Stop()
		}
	case glfw.KeyF5:
		err = a.loadProgram()
	case glfw.KeyF6:
		a.cpu.ToggleRun()
	case glfw.KeyF7:
		if !a.cpu.Running() {
			err = a.cpu.Step()
		}
	case glfw.KeyF8:
		a.config.PrintTrace = !a.config.PrintTrace
	case glfw.KeyF12:
		err = a.saveSnapshot()
	}

	if err != nil {
		log.Println(err)
	}
}

// focusCallback releases all keys when the window loses focus.
func (a *App) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		a.machine.Keypad().ReleaseAll()
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := display.Width * a.config.ScaleFactor
	height := display.Height * a.config.ScaleFactor

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	a.window, err = glfw.CreateWindow(width, height, AppName, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)
	a.window.SetFocusCallback(a.focusCallback)
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
	})

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.window.Destroy()
		a.window = nil
		glfw.Terminate()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)

	if err := a.renderer.Init(); err != nil {
		a.window.Destroy()
		a.window = nil
		glfw.Terminate()
		return err
	}

	return nil
}

// loadProgram loads the current program from disk and resets the cpu.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.Program)

	program, err := os.ReadFile(a.config.Program)
	if err != nil {
		return errors.Wrapf(err, "failed to read program")
	}

	if err := a.cpu.Load(program); err != nil {
		return errors.Wrapf(err, "failed to load %s", a.config.Program)
	}

	a.renderer.Upload(a.machine.Display())
	return nil
}

// saveSnapshot writes the current display contents to a PNG file in the
// working directory.
func (a *App) saveSnapshot() error {
	name := fmt.Sprintf("%s-%s.png", AppName, time.Now().Format("20060102-150405"))

	fd, err := os.Create(name)
	if err != nil {
		return err
	}

	defer fd.Close()

	pal := snapshot.DefaultPalette
	pal.On = rgb(a.config.Foreground)
	pal.Off = rgb(a.config.Background)

	if err := snapshot.Encode(fd, a.machine.Display(), pal, a.config.ScaleFactor); err != nil {
		return err
	}

	log.Println("saved", name)
	return nil
}

// rgb converts a normalized color to its 8-bit form.
func rgb(c [3]float32) color.Color {
	return color.RGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: 0xff,
	}
}

func (a *App) reportError(err error) {
	log.Println(err)
}

// printTrace prints instruction trace data. This can be toggled
// on and off through a.config.PrintTrace.
func (a *App) printTrace(i *cpu.Instruction) {
	if !a.config.PrintTrace {
		return
	}
	log.Println(formatTrace(i))
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString(f("shortcut keys:") + "\n")
	sb.WriteString(" ESC      " + f("Exit the program.") + "\n")
	sb.WriteString(" F1       " + f("Display this help.") + "\n")
	sb.WriteString(" F2       " + f("Enable/Disable debug mode.") + "\n")
	sb.WriteString(" F5       " + f("(re)load the program from disk and reset the cpu.") + "\n")
	sb.WriteString(" F6       " + f("Start/Stop program execution.") + "\n")
	sb.WriteString(" F7       " + f("Perform a single execution step while stopped.") + "\n")
	sb.WriteString(" F8       " + f("Enable/Disable debug trace output.") + "\n")
	sb.WriteString(" F12      " + f("Save a screenshot.") + "\n")
	sb.WriteString(" 1234 QWER ASDF ZXCV  " + f("Keypad."))
	log.Println(sb.String())
}

// prettyFrequency returns a human-readable version of the given tick frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
