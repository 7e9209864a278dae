package fbxdom

import "errors"

// Document layer errors. Every public accessor wraps one of these with
// context naming the offending node, key, or value; nothing is silently
// defaulted or coerced.
var (
	// ErrNodeNotFound reports a required named node absent from the tree.
	ErrNodeNotFound = errors.New("node not found")

	// ErrPropertyNotFound reports a property key absent from both the
	// object's own properties and its class default template.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyTypeMismatch reports a property that exists but whose
	// stored value type does not match the requested one.
	ErrPropertyTypeMismatch = errors.New("property type mismatch")

	// ErrInvalidEnumValue reports an axis code or sign outside its
	// valid set.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrInvalidNumericValue reports a numeric property outside its
	// valid domain, such as a non-normal unit scale factor.
	ErrInvalidNumericValue = errors.New("invalid numeric value")
)
