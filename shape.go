package nodefactory

import "fmt"

// Shape identifies the calling convention of one operation.
type Shape int

const (
	// ShapeCanonical is the current signature of an operation.
	ShapeCanonical Shape = iota
	// ShapeDecorators takes decorators and modifiers as two leading lists.
	ShapeDecorators
	// ShapeDecoratorsNoAssert is ShapeDecorators without the trailing
	// assert clause.
	ShapeDecoratorsNoAssert
	// ShapeDecoratorsNoTypeOnly is ShapeDecorators without isTypeOnly.
	ShapeDecoratorsNoTypeOnly
	// ShapeTypeOnlyLast moves isTypeOnly to the last position.
	ShapeTypeOnlyLast
	// ShapeNoTypeOnly lacks isTypeOnly.
	ShapeNoTypeOnly
	// ShapeNoAssert lacks the import assertions.
	ShapeNoAssert
	// ShapeNoModifiers lacks the leading modifiers list.
	ShapeNoModifiers
	// ShapeNoExclamation lacks the definite assignment token.
	ShapeNoExclamation
	// ShapeSwapped takes its two parameters in reverse order.
	ShapeSwapped
)

var shapeNames = map[Shape]string{
	ShapeCanonical:            "canonical",
	ShapeDecorators:           "decorators",
	ShapeDecoratorsNoAssert:   "decorators-no-assert",
	ShapeDecoratorsNoTypeOnly: "decorators-no-type-only",
	ShapeTypeOnlyLast:         "type-only-last",
	ShapeNoTypeOnly:           "no-type-only",
	ShapeNoAssert:             "no-assert",
	ShapeNoModifiers:          "no-modifiers",
	ShapeNoExclamation:        "no-exclamation",
	ShapeSwapped:              "swapped",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}
