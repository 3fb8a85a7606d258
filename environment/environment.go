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

// Package environment provides the context for a running host loop: the
// label that identifies how the program is being run and the preferences
// shared by every part of the system.
//
// Only one Environment can be live at a time. The End() function must be
// called before another Environment is created.
package environment

import (
	"sync"

	"minuet/curated"
)

// Label is used to name the environment
type Label string

// List of valid Label values.
const (
	MainLoop    Label = "main"
	Headless    Label = "headless"
	Performance Label = "performance"
)

// Sentinel error patterns.
const (
	AlreadyLive = "environment: an environment is already live (%s)"
)

// the label of the live environment. empty if there is no live environment
var live struct {
	crit  sync.Mutex
	label Label
}

// Environment is used to provide context for the host loop.
type Environment struct {
	Label Label

	// the host loop preferences
	Prefs *Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created from the preferences file.
func NewEnvironment(label Label, prefs *Preferences) (*Environment, error) {
	live.crit.Lock()
	defer live.crit.Unlock()

	if live.label != "" {
		return nil, curated.Errorf(AlreadyLive, live.label)
	}

	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs
	live.label = label

	return env, nil
}

// End the environment. Another environment can be created after this
// function has returned.
func (env *Environment) End() {
	live.crit.Lock()
	defer live.crit.Unlock()
	if live.label == env.Label {
		live.label = ""
	}
}

// Normalise ensures the environment is in a known default state.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}
