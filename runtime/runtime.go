// Package runtime composes the pallets into one state-transition engine:
// it fixes the concrete identity types, routes dispatched calls to the
// owning pallet, and executes blocks of extrinsics in order.
package runtime

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"gopallet/chain"
	"gopallet/claims"
	"gopallet/ledger"
	"gopallet/system"
)

// Compile-time checks that each pallet and the runtime itself satisfy the
// dispatch contract at the types fixed above.
var (
	_ chain.Dispatcher[AccountID, Call]                            = (*Runtime)(nil)
	_ chain.Dispatcher[AccountID, ledger.Call[AccountID, Balance]] = (*ledger.Pallet[AccountID, Balance])(nil)
	_ chain.Dispatcher[AccountID, claims.Call[Content]]            = (*claims.Pallet[AccountID, Content])(nil)
)

// Runtime owns one instance of every pallet. It is the sole owner of all
// state: nothing aliases the pallets from outside, and execution is
// single-threaded, so no locking is needed.
type Runtime struct {
	system *system.Pallet[AccountID, BlockNumber, Nonce]
	ledger *ledger.Pallet[AccountID, Balance]
	claims *claims.Pallet[AccountID, Content]

	log zerolog.Logger
}

// New returns a runtime with all pallet state zeroed. Per-extrinsic failures
// during block execution are reported through log.
func New(log zerolog.Logger) *Runtime {
	return &Runtime{
		system: system.New[AccountID, BlockNumber, Nonce](),
		ledger: ledger.New[AccountID, Balance](),
		claims: claims.New[AccountID, Content](),
		log:    log,
	}
}

// System exposes the bookkeeping pallet, mainly for drivers and tests.
func (r *Runtime) System() *system.Pallet[AccountID, BlockNumber, Nonce] {
	return r.system
}

// Ledger exposes the account ledger, mainly for genesis seeding via
// SetBalance and for balance queries.
func (r *Runtime) Ledger() *ledger.Pallet[AccountID, Balance] {
	return r.ledger
}

// Claims exposes the claim registry for lookups.
func (r *Runtime) Claims() *claims.Pallet[AccountID, Content] {
	return r.claims
}

// Dispatch routes a call to the pallet that owns it, delegating the caller
// and call verbatim. It does no bookkeeping of its own; nonces and block
// numbers are advanced by ExecuteBlock.
func (r *Runtime) Dispatch(caller AccountID, call Call) error {
	switch c := call.(type) {
	case LedgerCall:
		return r.ledger.Dispatch(caller, c.Call)
	case ClaimsCall:
		return r.claims.Dispatch(caller, c.Call)
	default:
		return errors.Errorf("runtime: unknown call %T", call)
	}
}
