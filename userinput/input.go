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

package userinput

import (
	"minuet/curated"
)

// DeviceClass identifies a source of key or button events.
type DeviceClass int

// List of device classes.
const (
	Keyboard DeviceClass = iota
	Pointer
)

func (d DeviceClass) String() string {
	switch d {
	case Keyboard:
		return "keyboard"
	case Pointer:
		return "pointer"
	}
	return "unknown device"
}

// Device pairs the event buffer for a device class with its snapshot. The
// query functions of the snapshot are available directly on the Device.
type Device struct {
	*Snapshot
	Class  DeviceClass
	Buffer *Buffer

	// the number of events dropped by the buffer before the last reconcile
	Dropped int
}

// Reconcile drains the buffer and reconciles the events into the snapshot.
func (d *Device) Reconcile() {
	d.Dropped = d.Buffer.Dropped()
	d.Snapshot.Reconcile(d.Buffer.Drain())
}

// Input is the complete user input state for a frame.
type Input struct {
	Keyboard Device
	Pointer  Device
	Cursor   Cursor
}

// Default buffer capacities. The keyboard is much more likely to see a burst
// of events in a single frame.
const (
	DefaultKeyboardCapacity = 16
	DefaultPointerCapacity  = 4
)

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(keyboardCapacity int, pointerCapacity int) (*Input, error) {
	kb, err := NewBuffer(keyboardCapacity)
	if err != nil {
		return nil, curated.Errorf("input: keyboard: %v", err)
	}
	pb, err := NewBuffer(pointerCapacity)
	if err != nil {
		return nil, curated.Errorf("input: pointer: %v", err)
	}

	return &Input{
		Keyboard: Device{
			Snapshot: NewSnapshot(),
			Class:    Keyboard,
			Buffer:   kb,
		},
		Pointer: Device{
			Snapshot: NewSnapshot(),
			Class:    Pointer,
			Buffer:   pb,
		},
	}, nil
}

// Device returns the Device for the device class. Returns nil for an unknown
// device class.
func (in *Input) Device(class DeviceClass) *Device {
	switch class {
	case Keyboard:
		return &in.Keyboard
	case Pointer:
		return &in.Pointer
	}
	return nil
}

// PushKey adds a keyboard event to the keyboard buffer.
func (in *Input) PushKey(code Code, down bool, repeat bool) {
	in.Keyboard.Buffer.Push(Event{Code: code, Down: down, Repeat: repeat})
}

// PushButton adds a button event to the pointer buffer. Pointer buttons never
// repeat.
func (in *Input) PushButton(button Code, down bool) {
	in.Pointer.Buffer.Push(Event{Code: button, Down: down})
}

// Reconcile drains and reconciles every device class. Called once per frame
// after the GUI events have been pumped.
func (in *Input) Reconcile() {
	in.Keyboard.Reconcile()
	in.Pointer.Reconcile()
}

// EndFrame is the explicit end of frame reset. Edges in every device class
// are cleared and the accumulated scroll is zeroed.
func (in *Input) EndFrame() {
	in.Keyboard.ClearEdges()
	in.Pointer.ClearEdges()
	in.Cursor.ResetScroll()
}
