package ledger

import (
	"github.com/pkg/errors"

	"gopallet/chain"
)

// Call is the ledger pallet's dispatchable call union. It is sealed: only
// types in this package can implement it.
type Call[A comparable, B chain.Unsigned] interface {
	isLedgerCall()
}

// Transfer moves Amount from the dispatching caller to To.
type Transfer[A comparable, B chain.Unsigned] struct {
	To     A
	Amount B
}

func (Transfer[A, B]) isLedgerCall() {}

// Dispatch routes a ledger call to its operation, using the caller supplied
// by the enclosing runtime dispatch.
func (p *Pallet[A, B]) Dispatch(caller A, call Call[A, B]) error {
	switch c := call.(type) {
	case Transfer[A, B]:
		return p.Transfer(caller, c.To, c.Amount)
	default:
		return errors.Errorf("ledger: unknown call %T", call)
	}
}
