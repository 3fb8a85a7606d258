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

package environment

import (
	"fmt"
	"strings"
	"sync"

	"minuet/curated"
	"minuet/paths"
	"minuet/prefs"
	"minuet/userinput"
)

// Sentinel error patterns.
const (
	OutOfRange = "preferences: %s out of range (%v)"
)

// Default values for the host loop preferences.
const (
	DefaultWindowWidth    = 1260
	DefaultWindowHeight   = 780
	DefaultCameraSpeed    = 5.0
	DefaultCameraRotation = 0.3
	DefaultRenderScale    = 0.5
)

// Preferences for the host loop. Values are loaded from the preferences file
// when the type is created and can be overridden by the prefs command line
// stack.
type Preferences struct {
	dsk *prefs.Disk

	// capacity of the input buffers
	KeyboardCapacity prefs.Int
	PointerCapacity  prefs.Int

	// target refresh rate. zero means that the refresh rate of the display
	// should be used
	Refresh prefs.Float

	Fullscreen prefs.Bool
	Overlay    prefs.Bool

	CameraSpeed    prefs.Float
	CameraRotation prefs.Float

	Accumulate prefs.Bool

	// the size of the rendered image as a fraction of the window size
	RenderScale prefs.Float

	// window size is stored as a single value
	windowSize *prefs.Generic
	crit       sync.Mutex
	width      int
	height     int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty the default resource path is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	if path == "" {
		path, err = paths.ResourcePath("", "preferences")
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	p.windowSize = prefs.NewGeneric(
		func(s string) error {
			var w, h int
			_, err := fmt.Sscanf(strings.TrimSpace(s), "%d,%d", &w, &h)
			if err != nil {
				return curated.Errorf(OutOfRange, "window size", s)
			}
			return p.SetWindowSize(w, h)
		},
		func() string {
			w, h := p.WindowSize()
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	p.KeyboardCapacity.SetHookPre(atLeastOne("keyboard capacity"))
	p.PointerCapacity.SetHookPre(atLeastOne("pointer capacity"))
	p.Refresh.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return curated.Errorf(OutOfRange, "refresh rate", v)
		}
		return nil
	})
	p.RenderScale.SetHookPre(func(v prefs.Value) error {
		if s := v.(float64); s <= 0 || s > 1 {
			return curated.Errorf(OutOfRange, "render scale", v)
		}
		return nil
	})

	entries := []struct {
		key string
		p   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"input.keyboard.capacity", &p.KeyboardCapacity},
		{"input.pointer.capacity", &p.PointerCapacity},
		{"display.refresh", &p.Refresh},
		{"display.fullscreen", &p.Fullscreen},
		{"display.overlay", &p.Overlay},
		{"window.size", p.windowSize},
		{"camera.speed", &p.CameraSpeed},
		{"camera.rotation", &p.CameraRotation},
		{"render.accumulate", &p.Accumulate},
		{"render.scale", &p.RenderScale},
	}

	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

func atLeastOne(name string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(OutOfRange, name, v)
		}
		return nil
	}
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.KeyboardCapacity.Set(userinput.DefaultKeyboardCapacity)
	_ = p.PointerCapacity.Set(userinput.DefaultPointerCapacity)
	_ = p.Refresh.Set(0.0)
	_ = p.Fullscreen.Set(false)
	_ = p.Overlay.Set(true)
	_ = p.CameraSpeed.Set(DefaultCameraSpeed)
	_ = p.CameraRotation.Set(DefaultCameraRotation)
	_ = p.Accumulate.Set(true)
	_ = p.RenderScale.Set(DefaultRenderScale)
	_ = p.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// WindowSize returns the width and height of the window.
func (p *Preferences) WindowSize() (int, int) {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.width, p.height
}

// SetWindowSize sets the width and height of the window. Both values must be
// positive.
func (p *Preferences) SetWindowSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(OutOfRange, "window size", fmt.Sprintf("%dx%d", width, height))
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	p.width = width
	p.height = height
	return nil
}

// RefreshRate returns the preferred refresh rate if it has been set.
// Otherwise the display rate is returned.
func (p *Preferences) RefreshRate(display float64) float64 {
	if r := p.Refresh.Get().(float64); r > 0 {
		return r
	}
	return display
}
