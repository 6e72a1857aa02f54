package claims

import "github.com/pkg/errors"

var (
	// ErrClaimExists is returned when creating a claim that already has an
	// owner.
	ErrClaimExists = errors.New("claim already exists")

	// ErrClaimNotFound is returned when revoking a claim nobody owns.
	ErrClaimNotFound = errors.New("claim does not exist")

	// ErrNotClaimOwner is returned when the revoking caller is not the
	// claim's owner.
	ErrNotClaimOwner = errors.New("caller does not own the claim")
)
