package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	p := Ptr(int64(42))
	assert.Equal(t, int64(42), *p)

	s := "Vancouver"
	sp := Ptr(s)
	s = "Calgary"
	assert.Equal(t, "Vancouver", *sp)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "x", Deref(Ptr("x")))

	var missing *int32
	assert.Equal(t, int32(0), Deref(missing))
}
