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

// KeyRecord is the reconciled state of a single key or button. Everything
// other than IsDown is an edge and is only valid for the frame in which it was
// computed.
type KeyRecord struct {
	IsDown    bool
	Pressed   bool
	Released  bool
	WentDown  bool
	HadRepeat bool
}

func (r KeyRecord) hasEdges() bool {
	return r.Pressed || r.Released || r.WentDown || r.HadRepeat
}

func (r *KeyRecord) clearEdges() {
	r.Pressed = false
	r.Released = false
	r.WentDown = false
	r.HadRepeat = false
}

// Snapshot is the per-frame view of a device class. A code that has no record
// is up and has no edges.
type Snapshot struct {
	records map[Code]*KeyRecord
}

// NewSnapshot is the preferred method of initialisation for the Snapshot
// type.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		records: make(map[Code]*KeyRecord),
	}
}

// Reconcile clears the edges computed by the previous reconciliation and then
// folds the events, in order, into the snapshot.
func (s *Snapshot) Reconcile(events []Event) {
	s.ClearEdges()

	for _, ev := range events {
		r, ok := s.records[ev.Code]
		if !ok {
			r = &KeyRecord{}
			s.records[ev.Code] = r
		}

		if ev.Down {
			if !r.IsDown {
				r.WentDown = true
				if !ev.Repeat {
					r.Pressed = true
				}
			} else if ev.Repeat {
				r.HadRepeat = true
			}
		} else if r.IsDown {
			r.Released = true
		}

		r.IsDown = ev.Down
	}
}

// ClearEdges resets all edges in the snapshot. Records for keys that are up
// are removed.
func (s *Snapshot) ClearEdges() {
	for c, r := range s.records {
		if !r.IsDown {
			delete(s.records, c)
			continue
		}
		r.clearEdges()
	}
}

// Record returns a copy of the record for the code.
func (s *Snapshot) Record(code Code) KeyRecord {
	if r, ok := s.records[code]; ok {
		return *r
	}
	return KeyRecord{}
}

// Len returns the number of codes with a record. Only keys that are down or
// that have edges this frame have a record.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// IsDown returns true if the key is down.
func (s *Snapshot) IsDown(code Code) bool {
	r, ok := s.records[code]
	return ok && r.IsDown
}

// Pressed returns true if a non-repeat press of the key occurred this frame.
func (s *Snapshot) Pressed(code Code) bool {
	r, ok := s.records[code]
	return ok && r.Pressed
}

// WentDown returns true if the key went from up to down this frame. Unlike
// Pressed() this is true even if the transition was caused by a repeat event.
func (s *Snapshot) WentDown(code Code) bool {
	r, ok := s.records[code]
	return ok && r.WentDown
}

// Released returns true if the key went from down to up this frame.
func (s *Snapshot) Released(code Code) bool {
	r, ok := s.records[code]
	return ok && r.Released
}

// HadRepeat returns true if a repeat event was received for a key that was
// already down.
func (s *Snapshot) HadRepeat(code Code) bool {
	r, ok := s.records[code]
	return ok && r.HadRepeat
}
