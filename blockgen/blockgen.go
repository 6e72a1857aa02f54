// Package blockgen builds deterministic block fixtures: a builder that hands
// out consecutively numbered blocks so tests and demo drivers do not track
// header numbers by hand.
package blockgen

import "gopallet/runtime"

// Builder numbers blocks sequentially starting at 1.
type Builder struct {
	next runtime.BlockNumber
}

// NewBuilder returns a builder whose first block is number 1.
func NewBuilder() *Builder {
	return &Builder{next: 1}
}

// Block packs the extrinsics into the next block in sequence.
func (b *Builder) Block(extrinsics ...runtime.Extrinsic) runtime.Block {
	block := runtime.Block{
		Header:     runtime.Header{Number: b.next},
		Extrinsics: extrinsics,
	}
	b.next++
	return block
}

// Ext pairs a caller with a call.
func Ext(caller runtime.AccountID, call runtime.Call) runtime.Extrinsic {
	return runtime.Extrinsic{Caller: caller, Call: call}
}
