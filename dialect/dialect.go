// Package dialect defines the "lite" tensor-operation dialect: the catalog of
// operation kinds, their typed operands, attributes, traits and result arity,
// and the Builder interface a runtime must implement to accept them.
//
// The dialect is declared twice, deliberately:
//
//   - The StandardOps/CustomOps interfaces (standard_ops.go) are the source
//     schema: one method per operation, with the semantics carried in the doc
//     comments. The schema is parsed by internal/schemaparser and consumed by
//     cmd/dialect_generator.
//   - The OpDef table (gen_op_defs.go, generated) is the queryable metadata
//     form used by generic passes: operand slots, attribute kinds, traits and
//     mnemonics.
//
// Verification of operation instances -- broadcast consistency, permutation
// validity, pad arithmetic and so on -- lives in the sub-package
// shapeinference. A Builder that rejects everything, useful to bootstrap new
// runtimes, lives in the sub-package notimplemented.
package dialect

import "github.com/pkg/errors"

// Name is the dialect namespace. All mnemonics are qualified with it,
// e.g. "lite.add".
const Name = "lite"

// ErrNotImplemented indicates an operation is not implemented for the given
// configuration (e.g. unsupported dtype or runtime). Implementations should
// wrap this error so callers can distinguish "not supported" from genuine
// bugs.
var ErrNotImplemented = errors.New("operation not implemented")
