package types

import "errors"

// ErrShapeMismatch reports a JSON value that matches no known variant of a
// structurally discriminated type, or a record missing its required shape.
var ErrShapeMismatch = errors.New("shape mismatch")
