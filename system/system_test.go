package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	p := New[string, uint32, uint32]()

	assert.Equal(t, uint32(0), p.BlockNumber())
}

func TestIncBlockNumber(t *testing.T) {
	p := New[string, uint32, uint32]()

	p.IncBlockNumber()
	assert.Equal(t, uint32(1), p.BlockNumber())

	p.IncBlockNumber()
	assert.Equal(t, uint32(2), p.BlockNumber())
}

func TestBlockNumberWrapsAtMax(t *testing.T) {
	// Narrow counter so the top of the range is reachable in a test.
	p := New[string, uint8, uint32]()

	for i := 0; i < math.MaxUint8; i++ {
		p.IncBlockNumber()
	}
	assert.Equal(t, uint8(math.MaxUint8), p.BlockNumber())

	p.IncBlockNumber()
	assert.Equal(t, uint8(0), p.BlockNumber(), "counter wraps to zero rather than failing")
}

func TestIncNonce(t *testing.T) {
	p := New[string, uint32, uint32]()

	p.IncNonce("alice")
	assert.Equal(t, uint32(1), p.Nonce("alice"))

	p.IncNonce("alice")
	p.IncNonce("alice")
	assert.Equal(t, uint32(3), p.Nonce("alice"))

	p.IncNonce("bob")
	assert.Equal(t, uint32(1), p.Nonce("bob"), "nonces are tracked per account")
	assert.Equal(t, uint32(3), p.Nonce("alice"))
}

func TestNoncePanics(t *testing.T) {
	t.Run("reading an unrecorded nonce", func(t *testing.T) {
		p := New[string, uint32, uint32]()

		assert.Panics(t, func() { p.Nonce("alice") })
	})

	t.Run("overflowing the nonce space", func(t *testing.T) {
		p := New[string, uint32, uint8]()
		for i := 0; i < math.MaxUint8; i++ {
			p.IncNonce("alice")
		}

		assert.Panics(t, func() { p.IncNonce("alice") })
	})
}
