// This file is part of Linkmap.
//
// Linkmap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Linkmap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Linkmap.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/linkmap/curated"
	"github.com/jetsetilly/linkmap/test"
)

const testError = "test error: %s"
const wrapError = "wrap: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// adjacent duplicates are removed
	f := curated.Errorf("test error: %v", e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, wrapError))

	f := curated.Errorf(wrapError, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectEquality(t, curated.Pattern(f), wrapError)

	test.ExpectFailure(t, curated.IsAny(io.EOF))
	test.ExpectFailure(t, curated.Has(nil, testError))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapError, io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))

	// no error values to unwrap
	e = curated.Errorf(testError, "foo")
	test.ExpectEquality(t, errors.Unwrap(e), nil)
}

type wrapper struct {
	err error
}

func (w wrapper) Error() string {
	return w.err.Error()
}

func (w wrapper) Unwrap() error {
	return w.err
}

func TestHasThroughUncurated(t *testing.T) {
	e := wrapper{err: curated.Errorf(testError, "foo")}
	test.ExpectSuccess(t, curated.Has(e, testError))
	test.ExpectFailure(t, curated.Has(e, wrapError))
}
