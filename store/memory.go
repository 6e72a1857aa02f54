package store

import (
	"sync"

	"github.com/pkg/errors"

	"gopallet/runtime"
)

// MemoryBlockStore is the only BlockStore implementation: a slice of blocks
// guarded by a RWMutex. Execution is single-threaded today, but the archive
// may be read from other goroutines (inspection tooling), so reads and
// writes are locked.
type MemoryBlockStore struct {
	mu     sync.RWMutex
	blocks []runtime.Block
}

// NewMemoryBlockStore returns an empty archive.
func NewMemoryBlockStore() *MemoryBlockStore {
	return &MemoryBlockStore{
		blocks: make([]runtime.Block, 0),
	}
}

// Append records a block, enforcing that history stays gapless: the block's
// header number must be exactly one past the current height.
func (m *MemoryBlockStore) Append(block runtime.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := runtime.BlockNumber(len(m.blocks)) + 1
	if block.Header.Number != next {
		return errors.Errorf("store: expected block %d, got %d", next, block.Header.Number)
	}

	m.blocks = append(m.blocks, block)
	return nil
}

// Height returns the most recent block number, zero when empty.
func (m *MemoryBlockStore) Height() runtime.BlockNumber {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return runtime.BlockNumber(len(m.blocks))
}

// Head returns the most recent block.
func (m *MemoryBlockStore) Head() (runtime.Block, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.blocks) == 0 {
		return runtime.Block{}, false
	}
	return m.blocks[len(m.blocks)-1], true
}

// BlockByNumber returns the block with header number n. Numbers start at 1.
func (m *MemoryBlockStore) BlockByNumber(n runtime.BlockNumber) (runtime.Block, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n == 0 || int(n) > len(m.blocks) {
		return runtime.Block{}, false
	}
	return m.blocks[n-1], true
}

var _ BlockStore = (*MemoryBlockStore)(nil)
