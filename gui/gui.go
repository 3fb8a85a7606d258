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

// Package gui defines the capabilities that a GUI implementation offers to
// the main loop. An implementation need only offer the capabilities that make
// sense for it and the main loop composes them as required.
//
// The gui package itself doesn't implement anything. See the sdlplay and
// headless packages for implementations.
package gui

import "minuet/userinput"

// Resizable is implemented by anything that needs to know the size of the
// drawable area. Resize() will be called on the goroutine that services the
// GUI events but the implementation should not assume that is the main
// goroutine.
type Resizable interface {
	Resize(width int, height int)
}

// Presentable is implemented by anything that can show a PixelBuffer. The
// buffer should be considered read-only and will not be retained beyond the
// next call to Present().
type Presentable interface {
	Present(buf *PixelBuffer) error
}

// InputSource is implemented by anything that produces user input. Pump()
// is called once per frame on the main goroutine and delivers any pending
// events to the input buffers.
type InputSource interface {
	Pump(in *userinput.Input) error

	// CloseRequested returns true if the user has asked, by means other than
	// the keyboard, for the program to end. For example, by closing the
	// window.
	CloseRequested() bool
}

// CursorControl is implemented by GUIs that can hide the pointer. Hidden
// and shown requests are idempotent.
type CursorControl interface {
	HideCursor()
	ShowCursor()
}

// Platform is the complete set of platform services that the renderer's
// camera may ask for.
type Platform interface {
	CursorControl
	Quit()
}

// GUI defines the feature request interface. The main loop and the user
// interface itself use this to change the state of the GUI.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Return current state of GUI feature.
	GetFeature(request FeatureReq) (FeatureReqData, error)
}

// Sentinel error patterns for the feature request interface.
const (
	UnsupportedGuiFeature = "gui: unsupported feature: %v"
	InvalidFeatureArgs    = "gui: invalid arguments for %v"
)
