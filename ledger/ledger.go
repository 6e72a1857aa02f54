// Package ledger is the account-ledger pallet: it owns the mapping from
// account to balance and exposes a checked transfer as its only dispatchable
// call. An account that has never been written holds an implicit zero.
package ledger

import (
	"gopallet/chain"
)

// Pallet holds every known account balance. A is the account identifier type
// and B the balance type fixed by the composed runtime.
type Pallet[A comparable, B chain.Unsigned] struct {
	balances map[A]B
}

// New returns an empty ledger; every balance reads as zero.
func New[A comparable, B chain.Unsigned]() *Pallet[A, B] {
	return &Pallet[A, B]{
		balances: make(map[A]B),
	}
}

// SetBalance overwrites an account's balance unconditionally. It is an
// administrative operation for genesis seeding and is not reachable through
// dispatch.
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	p.balances[who] = amount
}

// Balance returns the account's balance, zero if the account is unknown.
func (p *Pallet[A, B]) Balance(who A) B {
	return p.balances[who]
}

// Transfer moves amount from caller to to. It is all-or-nothing: both the
// debit underflow check and the credit overflow check must pass before either
// balance is written.
func (p *Pallet[A, B]) Transfer(caller, to A, amount B) error {
	callerBalance := p.Balance(caller)
	toBalance := p.Balance(to)

	newCallerBalance, ok := chain.CheckedSub(callerBalance, amount)
	if !ok {
		return ErrInsufficientBalance
	}

	newToBalance, ok := chain.CheckedAdd(toBalance, amount)
	if !ok {
		return ErrBalanceOverflow
	}

	// A transfer to self passes both checks but must not mint or burn.
	if caller == to {
		return nil
	}

	p.balances[caller] = newCallerBalance
	p.balances[to] = newToBalance
	return nil
}
