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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"minuet/curated"
	"minuet/prefs"
	"minuet/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "minuet_prefs_test")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions. value is unchanged
	err = v.Set("---")
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))
	err = v.Set(1.0)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
}

func TestFloat(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("scale", &v))
	test.ExpectSuccess(t, v.Set("0.5"))
	test.ExpectEquality(t, v.Get(), prefs.Value(0.5))
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.String(), "2.000")
	test.ExpectFailure(t, v.Set("half"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "scale :: 2.000\n")
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")

	// the unknown key is ignored by load
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, s.String(), "bar")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in the cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post []int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = append(post, value.(int))
		return nil
	})

	test.ExpectSuccess(t, v.Set(1))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectSuccess(t, v.Set(1))
	test.ExpectEquality(t, v.Get(), prefs.Value(1))
	test.DemandEquality(t, len(post), 2)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Int
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("a", &a))
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectSuccess(t, a.Set(5))

	// missing file is created when saveOnFail is true
	test.DemandSuccess(t, dsk.Load(true))
	cmpPrefFile(t, fn, "a :: 5\nb :: false\n")

	// command line overrides the file
	test.ExpectSuccess(t, a.Set(0))
	prefs.PushCommandLineStack("b::true")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, a.Get(), prefs.Value(5))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))

	// invalid values in the file are an error
	test.DemandSuccess(t, os.WriteFile(fn, []byte("a :: five\n"), 0o600))
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.DiskError))
	test.ExpectSuccess(t, curated.Has(err, prefs.InvalidValue))

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, a.Get(), prefs.Value(0))
}

func TestKeys(t *testing.T) {
	_, err := prefs.NewDisk("")
	test.ExpectFailure(t, err)

	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("key", &v), prefs.DuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a::b", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, dsk.HasEntry("key"))
	test.ExpectFailure(t, dsk.HasEntry("a::b"))
}
