package runtime

import "github.com/pkg/errors"

// ErrBlockNumberMismatch is returned when a block's header number does not
// follow the runtime's current block number. It is fatal to the block:
// none of its extrinsics are applied.
var ErrBlockNumberMismatch = errors.New("block number mismatch")

// ExecuteBlock is the state-transition function. It advances the block
// number, checks it against the header, then applies every extrinsic in
// order. A failing extrinsic is logged and skipped; it never aborts the
// block or rolls back earlier extrinsics. The caller's nonce is advanced
// before dispatch, whether or not the call succeeds.
func (r *Runtime) ExecuteBlock(block Block) error {
	r.system.IncBlockNumber()

	if current := r.system.BlockNumber(); current != block.Header.Number {
		return errors.Wrapf(ErrBlockNumberMismatch,
			"runtime is at block %d, header says %d", current, block.Header.Number)
	}

	for idx, ext := range block.Extrinsics {
		r.system.IncNonce(ext.Caller)

		if err := r.Dispatch(ext.Caller, ext.Call); err != nil {
			r.log.Error().
				Uint32("block", block.Header.Number).
				Int("extrinsic", idx).
				Str("caller", ext.Caller).
				Err(err).
				Msg("extrinsic failed")
		}
	}

	return nil
}
