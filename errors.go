package rowindex

import "errors"

// ErrInvalidArgument is returned by constructors when their input
// violates the invariants documented on them (negative length, negative
// start, an overflowing endpoint, a non-boolean column, and so on). It
// carries no partial state: the constructor returns (nil, err).
var ErrInvalidArgument = errors.New("rowindex: invalid argument")

// ErrUnsupported is returned by operations that are deliberately
// unimplemented, such as the 64-bit filter builder.
var ErrUnsupported = errors.New("rowindex: unsupported")
