package farm

import "github.com/pkg/errors"

var (
	// ErrPoolNotFound indicates the derived pool account does not exist on
	// the ledger.
	ErrPoolNotFound = errors.New("pool not found")

	// ErrUserNotFound indicates the owner has no staking record in the pool.
	ErrUserNotFound = errors.New("user staking record not found")

	// ErrMissingSigner indicates a compiled transaction still has an
	// unsigned signing slot. The transaction is never submitted.
	ErrMissingSigner = errors.New("transaction is missing a required signer")
)
