package xslices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	count := 17
	in := Iota(0, count)
	out := Map(in, func(v int) int32 { return int32(v + 1) })
	for ii := 0; ii < count; ii++ {
		assert.Equalf(t, int32(ii+1), out[ii], "element %d doesn't match", ii)
	}
}

func TestIotaAndFill(t *testing.T) {
	assert.Equal(t, []float64{3.0, 4.0}, Iota(3.0, 2))
	assert.Equal(t, []int{1, 1, 1}, FillSlice(3, 1))
	assert.Equal(t, []int{0, 1, 2}, Copy([]int{0, 1, 2}))
	assert.Nil(t, Copy([]int{}))
}
