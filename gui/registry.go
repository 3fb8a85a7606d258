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

package gui

// ViewID is a handle to a view in a Registry. A zero ViewID never refers to a
// view.
type ViewID int

// Registry maps handles to views. The owner of the registry owns the views;
// anything else that needs to refer to a view keeps a ViewID and resolves it
// when required. A handle to a removed view resolves to nothing.
//
// Registry is not safe for concurrent use.
type Registry struct {
	next  ViewID
	views map[ViewID]any
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[ViewID]any),
	}
}

// Add a view to the registry and return the handle for it.
func (reg *Registry) Add(view any) ViewID {
	reg.next++
	reg.views[reg.next] = view
	return reg.next
}

// Remove the view with the handle. Removing a view that isn't in the registry
// does nothing.
func (reg *Registry) Remove(id ViewID) {
	delete(reg.views, id)
}

// Len returns the number of views in the registry.
func (reg *Registry) Len() int {
	return len(reg.views)
}

// Lookup returns the view for the handle.
func (reg *Registry) Lookup(id ViewID) (any, bool) {
	v, ok := reg.views[id]
	return v, ok
}

// Resolve returns the view for the handle as the type T. The second return
// value is false if there is no view for the handle or if the view cannot be
// used as type T.
func Resolve[T any](reg *Registry, id ViewID) (T, bool) {
	var z T
	v, ok := reg.views[id]
	if !ok {
		return z, false
	}
	t, ok := v.(T)
	if !ok {
		return z, false
	}
	return t, true
}
