// This file is part of Minuet.
//
// Minuet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Minuet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Minuet.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"minuet/assert"
	"minuet/clock"
	"minuet/environment"
	"minuet/gui"
	"minuet/gui/headless"
	"minuet/gui/overlay"
	"minuet/gui/sdlplay"
	"minuet/hostloop"
	"minuet/logger"
	"minuet/modalflag"
	"minuet/paths"
	"minuet/performance"
	"minuet/performance/limiter"
	"minuet/prefs"
	"minuet/raytrace"
	"minuet/statsview"
	"minuet/userinput"
	"minuet/version"
	"minuet/viewport"
	"minuet/vsync"
)

// the refresh rate to use if the display doesn't report one.
const fallbackRefresh = 60.0

// number of frames in the rolling window of the frame meter.
const meterWindow = 120

// values used with os.Exit().
const (
	exitParseError = 10
	exitModeError  = 20
)

// SDL requires that window creation and event handling happen on the main
// thread. locking the OS thread in init() ensures that main() runs there.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	assert.RegisterMainThread()
	os.Exit(launch(os.Args[1:]))
}

// launch parses the command line and runs the selected mode. returns the
// value to use with os.Exit().
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	v, rev, _ := version.Version()
	logger.Logf(logger.Allow, "minuet", "%s %s (%s)", version.ApplicationName, v, rev)

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "HEADLESS":
		err = runHeadless(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return 0
}

// set debugging log echo.
func setLogging(echo bool) {
	if echo {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}
}

// interruptHandler calls requestClose when an interrupt signal is received.
// the returned function must be called when the handler is no longer
// required.
func interruptHandler(requestClose func()) func() {
	intChan := make(chan os.Signal, 1)
	done := make(chan bool)
	signal.Notify(intChan, os.Interrupt)

	go func() {
		select {
		case <-intChan:
			logger.Log(logger.Allow, "minuet", "interrupt signal received")
			requestClose()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(intChan)
		close(done)
	}
}

// dumpInput writes a graphviz representation of the input state to a new
// file in the dumps directory.
func dumpInput(in *userinput.Input) {
	fn, err := paths.ResourcePath("dumps", paths.UniqueFilename("input", "dot"))
	if err != nil {
		logger.Log(logger.Allow, "minuet", err)
		return
	}
	err = writeDump(in, fn)
	if err != nil {
		logger.Log(logger.Allow, "minuet", err)
		return
	}
	logger.Logf(logger.Allow, "minuet", "input dumped to %s", fn)
}

func writeDump(in *userinput.Input, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	in.Dump(f)
	return nil
}

func newInput(p *environment.Preferences) (*userinput.Input, error) {
	return userinput.NewInput(p.KeyboardCapacity.Get().(int), p.PointerCapacity.Get().(int))
}

func newCamera(p *environment.Preferences, platform gui.CursorControl) *raytrace.Camera {
	cam := raytrace.NewCamera(45, 0.1, 100, platform)
	cam.Speed = float32(p.CameraSpeed.Get().(float64))
	cam.RotationSpeed = float32(p.CameraRotation.Get().(float64))
	return cam
}

// windowSizeView records the size of the window in the preferences. the
// size of a full screen window is not recorded.
type windowSizeView struct {
	sp    *sdlplay.SdlPlay
	prefs *environment.Preferences
}

// Resize implements the gui.Resizable interface.
func (v windowSizeView) Resize(width, height int) {
	if fs, err := v.sp.GetFeature(gui.ReqFullScreen); err == nil && fs.(bool) {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	err := v.prefs.SetWindowSize(width, height)
	if err != nil {
		logger.Log(logger.Allow, "minuet", err)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	refresh := md.AddFloat64("refresh", 0, "refresh rate (0 for display rate)")
	scale := md.AddFloat64("scale", 0, "render scale (0 for preferred value)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	fullscreen := md.AddBool("fullscreen", false, "start in full screen mode")
	prefsArgs := md.AddString("prefs", "", "preferences to override (key::value; ...)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(*log)

	if *prefsArgs != "" {
		prefs.PushCommandLineStack(*prefsArgs)
	}

	env, err := environment.NewEnvironment(environment.MainLoop, nil)
	if err != nil {
		return err
	}
	defer env.End()

	if *stats {
		stop, err := statsview.Launch(os.Stdout)
		if err != nil {
			return err
		}
		defer stop()
	}

	in, err := newInput(env.Prefs)
	if err != nil {
		return err
	}

	renderScale := env.Prefs.RenderScale.Get().(float64)
	if *scale > 0 {
		renderScale = *scale
	}

	width, height := env.Prefs.WindowSize()
	dims := viewport.NewDimensions(0, 0)

	sp, err := sdlplay.NewSdlPlay(sdlplay.Options{
		Title:      version.Title(),
		Width:      width,
		Height:     height,
		Scale:      renderScale,
		FullScreen: *fullscreen || env.Prefs.Fullscreen.Get().(bool),
	}, dims)
	if err != nil {
		return err
	}
	defer sp.Destroy()

	sp.AddView(windowSizeView{sp: sp, prefs: env.Prefs})

	rnd := raytrace.NewRenderer()
	rnd.Settings.Accumulate = env.Prefs.Accumulate.Get().(bool)
	cam := newCamera(env.Prefs, sp)

	meter := performance.NewMeter(meterWindow)
	sp.SetOverlay(overlay.NewOverlay(meter, rnd, cam), overlay.PanelWidth)
	err = sp.SetFeature(gui.ReqOverlay, env.Prefs.Overlay.Get().(bool))
	if err != nil {
		return err
	}

	hz := env.Prefs.RefreshRate(sp.RefreshRate())
	if *refresh > 0 {
		hz = *refresh
	}
	if hz <= 0 {
		logger.Logf(logger.Allow, "minuet", "display refresh rate unknown. using %.0fHz", fallbackRefresh)
		hz = fallbackRefresh
	}

	gate := vsync.NewGate()
	src, err := limiter.NewSource(hz, gate)
	if err != nil {
		return err
	}

	loop, err := hostloop.NewLoop(hostloop.Collaborators[*raytrace.Scene, *raytrace.Camera]{
		Input:     in,
		Source:    sp,
		Presenter: sp,
		Dims:      dims,
		Clock:     clock.NewFrameClock(),
		Gate:      gate,
		Timer:     src,
		Camera:    cam,
		Renderer:  rnd,
		Scene:     raytrace.DefaultScene(),
		OnFrame: func(f hostloop.Frame) {
			meter.Record(f)
			if in.Keyboard.Pressed(userinput.KeyF12) {
				dumpInput(in)
			}
		},
	})
	if err != nil {
		return err
	}

	stopInterrupt := interruptHandler(loop.RequestClose)
	defer stopInterrupt()

	err = loop.Run()
	if err != nil {
		return err
	}

	fmt.Println(meter.Summary())

	// keep the state of the settings that can be changed while running
	_ = env.Prefs.Accumulate.Set(rnd.Settings.Accumulate)
	_ = env.Prefs.CameraSpeed.Set(float64(cam.Speed))
	if ov, err := sp.GetFeature(gui.ReqOverlay); err == nil {
		_ = env.Prefs.Overlay.Set(ov.(bool))
	}

	return env.Prefs.Save()
}

func runHeadless(md *modalflag.Modes) error {
	md.NewMode()
	width := md.AddInt("width", 80, "width of viewport")
	height := md.AddInt("height", 45, "height of viewport")
	refresh := md.AddFloat64("refresh", 30, "refresh rate")
	screenshot := md.AddString("screenshot", "", "save last frame as PNG on exit")
	dump := md.AddString("dump", "", "save graphviz representation of input state on exit")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(*log)

	env, err := environment.NewEnvironment(environment.Headless, nil)
	if err != nil {
		return err
	}
	defer env.End()

	in, err := newInput(env.Prefs)
	if err != nil {
		return err
	}

	// without a terminal there is no keyboard and the loop can only be
	// ended with an interrupt signal
	var kb *headless.Keyboard
	trm, err := headless.OpenTerminal(os.Stdin)
	if err != nil {
		logger.Log(logger.Allow, "minuet", err)
	} else {
		defer trm.Close()
		kb = headless.NewKeyboard(trm, headless.DefaultReleaseTimeout)
	}

	dims := viewport.NewDimensions(*width, *height)
	hl := headless.NewHeadless(kb, dims, *refresh)

	gate := vsync.NewGate()
	src, err := limiter.NewSource(*refresh, gate)
	if err != nil {
		return err
	}

	meter := performance.NewMeter(meterWindow)

	loop, err := hostloop.NewLoop(hostloop.Collaborators[*raytrace.Scene, *raytrace.Camera]{
		Input:     in,
		Source:    hl,
		Presenter: hl,
		Dims:      dims,
		Clock:     clock.NewFrameClock(),
		Gate:      gate,
		Timer:     src,
		Camera:    newCamera(env.Prefs, hl),
		Renderer:  raytrace.NewRenderer(),
		Scene:     raytrace.DefaultScene(),
		OnFrame:   meter.Record,
	})
	if err != nil {
		return err
	}

	stopInterrupt := interruptHandler(loop.RequestClose)
	defer stopInterrupt()

	err = loop.Run()
	if err != nil {
		return err
	}

	fmt.Println(meter.Summary())

	if *screenshot != "" {
		err = hl.SetFeature(gui.ReqScreenshot, *screenshot)
		if err != nil {
			return err
		}
	}

	if *dump != "" {
		err = writeDump(in, *dump)
		if err != nil {
			return err
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	duration := md.AddString("duration", "5s", "run duration (with an additional 1s leadtime)")
	width := md.AddInt("width", 320, "width of viewport")
	height := md.AddInt("height", 180, "height of viewport")
	refresh := md.AddFloat64("refresh", 60, "refresh rate")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(*log)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.Performance, nil)
	if err != nil {
		return err
	}
	defer env.End()

	// performance is measured with the default preferences
	env.Normalise()

	return performance.Check(os.Stdout, prf, performance.CheckOptions{
		Width:    *width,
		Height:   *height,
		Refresh:  *refresh,
		Duration: *duration,
		Leadtime: time.Second,
	})
}
