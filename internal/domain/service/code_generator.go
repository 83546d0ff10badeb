package service

// CodeGenerator produces the unguessable secrets used by the verification
// and password reset flows.
type CodeGenerator interface {
	// NumericCode returns a uniformly random six-digit code, "100000"
	// through "999999".
	NumericCode() (string, error)

	// Token returns an opaque single-use token value.
	Token() (string, error)
}
