// Package store archives executed blocks in memory so drivers and tests can
// inspect history. The runtime itself never reads it; state lives in the
// pallets and the archive is bookkeeping on the side.
package store

import "gopallet/runtime"

// BlockStore keeps the ordered history of executed blocks.
type BlockStore interface {
	// Append records a block. Blocks must arrive in header order starting
	// at 1.
	Append(block runtime.Block) error

	// Height returns the number of the most recent block, zero when empty.
	Height() runtime.BlockNumber

	// Head returns the most recent block, ok=false when empty.
	Head() (runtime.Block, bool)

	// BlockByNumber returns the block with the given header number,
	// ok=false when out of range.
	BlockByNumber(n runtime.BlockNumber) (runtime.Block, bool)
}
