package claims

import "github.com/pkg/errors"

// Call is the claim pallet's dispatchable call union, sealed to this package.
// The caller is not part of the call; dispatch supplies it.
type Call[C comparable] interface {
	isClaimsCall()
}

// CreateClaim registers the dispatching caller as owner of Claim.
type CreateClaim[C comparable] struct {
	Claim C
}

// RevokeClaim removes Claim, provided the dispatching caller owns it.
type RevokeClaim[C comparable] struct {
	Claim C
}

func (CreateClaim[C]) isClaimsCall() {}
func (RevokeClaim[C]) isClaimsCall() {}

// Dispatch routes a claim call to its operation.
func (p *Pallet[A, C]) Dispatch(caller A, call Call[C]) error {
	switch c := call.(type) {
	case CreateClaim[C]:
		return p.Create(caller, c.Claim)
	case RevokeClaim[C]:
		return p.Revoke(caller, c.Claim)
	default:
		return errors.Errorf("claims: unknown call %T", call)
	}
}
