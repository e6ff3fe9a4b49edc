package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned when no vault record has the requested ID.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrVaultAlreadyExists is returned when a vault with the same ID is
	// already stored.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrInvitationNotFound is returned when no invitation has the requested code.
	ErrInvitationNotFound = errors.New("invitation was not found")

	// ErrInvitationAlreadyExists is returned when an invitation code collides
	// with a stored one. Callers regenerate the code and retry.
	ErrInvitationAlreadyExists = errors.New("invitation code already exists")

	// ErrEnvelopeAlreadyExists is returned by the relay mailbox when an
	// envelope ID was already accepted. The sender treats it as delivered.
	ErrEnvelopeAlreadyExists = errors.New("envelope already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// storage methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingColumn is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
