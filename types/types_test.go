package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := MakeSet[int]()
	assert.Len(t, s, 0)
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(7, 11)
	sub := s.Sub(s2)
	assert.True(t, sub.Equal(SetWith(3)))
	assert.False(t, s.Equal(s2))
	assert.True(t, SetWith(3, 7).Equal(s))
}
