package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pair struct{ X, Y float64 }

func TestName(t *testing.T) {
	assert.Equal(t, "Ø", Name(nil))

	a := Name(pair{1, 2})
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Name(pair{1, 2}), "equal values should share a name")
}
