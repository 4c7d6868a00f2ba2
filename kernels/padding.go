package kernels

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// PaddingIdentity returns the identity value used to fill the padded positions of a
// max-pooling window: the lowest representable value of the dtype, so padding never wins
// the max.
func PaddingIdentity(dtype dtypes.DType) (any, error) {
	switch dtype {
	case dtypes.Float64:
		return math.Inf(-1), nil
	case dtypes.Float32:
		return float32(math.Inf(-1)), nil
	case dtypes.Float16:
		return float16.Inf(-1), nil
	case dtypes.Int8:
		return int8(math.MinInt8), nil
	case dtypes.Int16:
		return int16(math.MinInt16), nil
	case dtypes.Int32:
		return int32(math.MinInt32), nil
	case dtypes.Int64:
		return int64(math.MinInt64), nil
	case dtypes.Uint8:
		return uint8(0), nil
	case dtypes.Uint16:
		return uint16(0), nil
	case dtypes.Uint32:
		return uint32(0), nil
	case dtypes.Uint64:
		return uint64(0), nil
	}
	return nil, errors.Errorf("no padding identity for dtype %s", dtype)
}
