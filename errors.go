package nodefactory

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidPrivateName is returned when a private identifier is built
	// from text that does not start with '#'.
	ErrInvalidPrivateName = errors.NewKind("first character of private identifier must be #: %s")

	// ErrUnsupportedCallShape is returned when an argument tuple matches no
	// known calling convention of the operation.
	ErrUnsupportedCallShape = errors.NewKind("unsupported call shape for %s: %s")

	// ErrUnknownOperation is returned by Call for names outside the catalog.
	ErrUnknownOperation = errors.NewKind("unknown operation %s")

	// ErrArgumentType is returned when a value cannot be passed as the given
	// parameter.
	ErrArgumentType = errors.NewKind("argument %s of %s: cannot use %T as %s")

	// ErrProbeFailed is returned when probing a library instance panics.
	ErrProbeFailed = errors.NewKind("probe %s failed: %v")

	// ErrNotALibrary is returned when a value exposes no construction
	// operations.
	ErrNotALibrary = errors.NewKind("expecting an AST construction library, but received: %T")

	// ErrMissingOperation is returned when an operation is neither provided
	// by the library nor synthesizable.
	ErrMissingOperation = errors.NewKind("operation %s is not available and cannot be synthesized")
)
