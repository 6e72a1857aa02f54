// Package system is the bookkeeping pallet: the current block number and a
// per-account nonce counter. It has no dispatchable calls; block execution
// drives it directly, advancing the block number once per block and each
// caller's nonce once per extrinsic.
package system

import (
	"fmt"

	"gopallet/chain"
)

// Pallet holds the counters. A is the account identifier type, N the block
// number type and O the nonce type fixed by the composed runtime.
type Pallet[A comparable, N chain.Unsigned, O chain.Unsigned] struct {
	blockNumber N
	nonces      map[A]O
}

// New returns a pallet at block zero with no recorded nonces.
func New[A comparable, N chain.Unsigned, O chain.Unsigned]() *Pallet[A, N, O] {
	return &Pallet[A, N, O]{
		nonces: make(map[A]O),
	}
}

// BlockNumber returns the current block number.
func (p *Pallet[A, N, O]) BlockNumber() N {
	return p.blockNumber
}

// IncBlockNumber advances the block number by one. When the counter reaches
// the top of its range it wraps back to zero instead of failing; see
// DESIGN.md for the policy discussion.
func (p *Pallet[A, N, O]) IncBlockNumber() {
	next, ok := chain.CheckedAdd(p.blockNumber, 1)
	if !ok {
		next = 0
	}
	p.blockNumber = next
}

// IncNonce advances the account's nonce by one, starting from zero for an
// account never seen before. Nonce space is assumed large enough to never
// run out; exhausting it is an invariant violation and panics.
func (p *Pallet[A, N, O]) IncNonce(who A) {
	next, ok := chain.CheckedAdd(p.nonces[who], 1)
	if !ok {
		panic(fmt.Sprintf("system: nonce overflow for account %v", who))
	}
	p.nonces[who] = next
}

// Nonce returns the account's nonce. The account must have submitted at
// least one extrinsic; reading an unrecorded nonce is a caller bug and
// panics.
func (p *Pallet[A, N, O]) Nonce(who A) O {
	nonce, ok := p.nonces[who]
	if !ok {
		panic(fmt.Sprintf("system: no nonce recorded for account %v", who))
	}
	return nonce
}
