// Package chain holds the shared kinds every pallet agrees on: the numeric
// constraint for counters and balances, the block/extrinsic containers, and
// the dispatch contract. Pallets are generic over these so the composed
// runtime can fix concrete types once and have every module interoperate.
package chain

// Unsigned is the constraint for every counter-like quantity in the runtime:
// balances, block numbers and nonces. Unsigned keeps the checked-arithmetic
// helpers simple (a single wrap/underflow comparison each).
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Dispatcher is the uniform dispatch contract. Every pallet implements it for
// its own call union, and the composed runtime implements it for the closed
// union of all pallet calls.
type Dispatcher[Caller any, Call any] interface {
	Dispatch(caller Caller, call Call) error
}

// Header carries the only metadata a block needs: its height.
type Header[N Unsigned] struct {
	Number N
}

// Extrinsic is a single externally-submitted instruction: who is calling,
// and what they are calling.
type Extrinsic[A any, C any] struct {
	Caller A
	Call   C
}

// Block is an ordered batch of extrinsics under one header. Ordering is
// significant: extrinsics are applied strictly in slice order.
type Block[N Unsigned, A any, C any] struct {
	Header     Header[N]
	Extrinsics []Extrinsic[A, C]
}
