package runtime

import (
	"gopallet/chain"
	"gopallet/claims"
	"gopallet/ledger"
)

// Concrete types shared by every pallet in this runtime. Pallets are generic;
// fixing the types once here is what makes them interoperate.
type (
	// AccountID identifies an actor. Opaque, ordered, used as a map key
	// everywhere.
	AccountID = string

	// Balance is the ledger's numeric quantity.
	Balance = uint64

	// BlockNumber counts executed blocks.
	BlockNumber = uint32

	// Nonce counts extrinsics submitted per account.
	Nonce = uint32

	// Content is a claim's content fingerprint.
	Content = string
)

// Wire containers instantiated for this runtime.
type (
	Header    = chain.Header[BlockNumber]
	Extrinsic = chain.Extrinsic[AccountID, Call]
	Block     = chain.Block[BlockNumber, AccountID, Call]
)

// Call is the closed union of every pallet's calls. Adding a pallet means
// adding a variant here and a case to Runtime.Dispatch.
type Call interface {
	isRuntimeCall()
}

// LedgerCall wraps a ledger pallet call.
type LedgerCall struct {
	Call ledger.Call[AccountID, Balance]
}

// ClaimsCall wraps a claim registry call.
type ClaimsCall struct {
	Call claims.Call[Content]
}

func (LedgerCall) isRuntimeCall() {}
func (ClaimsCall) isRuntimeCall() {}

// Transfer builds a runtime call moving amount from the dispatching caller
// to the given account.
func Transfer(to AccountID, amount Balance) Call {
	return LedgerCall{Call: ledger.Transfer[AccountID, Balance]{To: to, Amount: amount}}
}

// CreateClaim builds a runtime call claiming the given content for the
// dispatching caller.
func CreateClaim(claim Content) Call {
	return ClaimsCall{Call: claims.CreateClaim[Content]{Claim: claim}}
}

// RevokeClaim builds a runtime call revoking the given content claim.
func RevokeClaim(claim Content) Call {
	return ClaimsCall{Call: claims.RevokeClaim[Content]{Claim: claim}}
}
