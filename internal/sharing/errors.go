package sharing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidThreshold is returned when M < 1 or M > N.
	ErrInvalidThreshold = errors.New("invalid threshold")
	// ErrInvalidShareCount is returned when N < 1 or N exceeds the field.
	ErrInvalidShareCount = errors.New("invalid share count")
	// ErrSecretTooLarge is returned when the encoded secret is not below the modulus.
	ErrSecretTooLarge = errors.New("secret too large for modulus")
	// ErrInvalidModulus is returned for a missing, small or composite modulus.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrDuplicateShareIndex is returned when two shares share an index but
	// carry different values.
	ErrDuplicateShareIndex = errors.New("duplicate share index")
	// ErrInsufficientShares is returned when fewer than M distinct shares are supplied.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrReconstruction matches every [*ReconstructionError] via errors.Is.
	ErrReconstruction = errors.New("reconstruction failed")
)

// ReconstructionError describes why a set of shares could not be combined.
type ReconstructionError struct {
	Reason string
	Cause  error
}

func (e *ReconstructionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrReconstruction, e.Reason, e.Cause)
	}

	return fmt.Sprintf("%s: %s", ErrReconstruction, e.Reason)
}

func (e *ReconstructionError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrReconstruction) true for any ReconstructionError.
func (e *ReconstructionError) Is(target error) bool {
	return target == ErrReconstruction
}

func reconstructionError(reason string, cause error) error {
	return &ReconstructionError{Reason: reason, Cause: cause}
}
