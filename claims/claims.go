// Package claims is the claim-registry pallet: a proof-of-existence style
// mapping from a content fingerprint to the single account that owns it.
// A fingerprint is either owned by exactly one account or absent; revoking
// removes the entry outright, leaving no tombstone.
package claims

// Pallet holds the registry. A is the account identifier type and C the
// content fingerprint type fixed by the composed runtime.
type Pallet[A comparable, C comparable] struct {
	claims map[C]A
}

// New returns an empty registry.
func New[A comparable, C comparable]() *Pallet[A, C] {
	return &Pallet[A, C]{
		claims: make(map[C]A),
	}
}

// Get returns the owner of claim and whether it is claimed at all.
func (p *Pallet[A, C]) Get(claim C) (A, bool) {
	owner, ok := p.claims[claim]
	return owner, ok
}

// Create records caller as the owner of claim. Fails if the claim already
// has an owner, whoever that owner is.
func (p *Pallet[A, C]) Create(caller A, claim C) error {
	if _, taken := p.claims[claim]; taken {
		return ErrClaimExists
	}
	p.claims[claim] = caller
	return nil
}

// Revoke removes claim from the registry. Only the current owner may revoke.
func (p *Pallet[A, C]) Revoke(caller A, claim C) error {
	owner, ok := p.claims[claim]
	if !ok {
		return ErrClaimNotFound
	}
	if owner != caller {
		return ErrNotClaimOwner
	}
	delete(p.claims, claim)
	return nil
}
