package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom at %d", 3)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom at 3")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestMustBeFinite(t *testing.T) {
	check := func(points []Point) (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		MustBeFinite(points)
		return nil
	}

	assert.NoError(t, check(nil))
	assert.NoError(t, check([]Point{{0, 0}, {1e300, -1e300}}))
	assert.EqualError(t, check([]Point{{0, 0}, {math.Inf(1), 0}}), "point 1 is not finite: (+Inf, 0)")
	assert.EqualError(t, check([]Point{{0, math.Inf(-1)}}), "point 0 is not finite: (0, -Inf)")
	assert.EqualError(t, check([]Point{{1, 1}, {2, 2}, {math.NaN(), 0}}), "point 2 is not a number: (NaN, 0)")
}
