package envkit

// Parser is the override parsing capability: a type that knows how to build
// itself from the textual form of an env var. Implement it with a value
// receiver on the target type; the error comes back to the caller unchanged,
// wrapped in a *ParseError
type Parser[T any] interface {
	ParseEnv(s string) (T, error)
}

// Custom routes parsing for T through its Parser implementation instead of
// the built-in conversion set. Go will not let a method be attached to a type
// from another package, so foreign types get a Parser implementation on a
// local named type and Custom bridges it into the retrieval functions:
//
//	type oneOrTwo uint8
//
//	func (oneOrTwo) ParseEnv(s string) (oneOrTwo, error) {
//		switch s {
//		case "one":
//			return 1, nil
//		case "two":
//			return 2, nil
//		}
//		return 0, errors.New(`not "one" or "two"`)
//	}
//
//	v, err := envkit.Must[envkit.Custom[oneOrTwo]]("MY_ONE_OR_TWO")
//	// v.V holds the parsed value
type Custom[T Parser[T]] struct {
	// V is the wrapped value
	V T
}

// UnmarshalText bridges the Parser override into the general parsing
// capability used by the retrieval functions
func (c *Custom[T]) UnmarshalText(b []byte) error {
	v, err := c.V.ParseEnv(string(b))
	if err != nil {
		return err
	}
	c.V = v
	return nil
}
