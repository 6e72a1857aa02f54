package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitBalances(t *testing.T) {
	p := New[string, uint64]()

	assert.Equal(t, uint64(0), p.Balance("alice"))

	p.SetBalance("alice", 100)

	assert.Equal(t, uint64(100), p.Balance("alice"))
	assert.Equal(t, uint64(0), p.Balance("bob"))
}

func TestTransfer(t *testing.T) {
	t.Run("moves funds and conserves the total", func(t *testing.T) {
		p := New[string, uint64]()
		p.SetBalance("alice", 100)
		p.SetBalance("bob", 100)

		require.NoError(t, p.Transfer("alice", "bob", 10))

		assert.Equal(t, uint64(90), p.Balance("alice"))
		assert.Equal(t, uint64(110), p.Balance("bob"))
		assert.Equal(t, uint64(200), p.Balance("alice")+p.Balance("bob"))
	})

	t.Run("entire balance can be spent", func(t *testing.T) {
		p := New[string, uint64]()
		p.SetBalance("alice", 100)

		require.NoError(t, p.Transfer("alice", "bob", 100))

		assert.Equal(t, uint64(0), p.Balance("alice"))
		assert.Equal(t, uint64(100), p.Balance("bob"))
	})

	t.Run("insufficient balance leaves state untouched", func(t *testing.T) {
		p := New[string, uint64]()
		p.SetBalance("alice", 100)

		err := p.Transfer("alice", "bob", 200)

		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Equal(t, uint64(100), p.Balance("alice"))
		assert.Equal(t, uint64(0), p.Balance("bob"))
	})

	t.Run("unknown caller holds zero and cannot send", func(t *testing.T) {
		p := New[string, uint64]()

		err := p.Transfer("nobody", "bob", 1)

		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("recipient overflow leaves state untouched", func(t *testing.T) {
		p := New[string, uint64]()
		p.SetBalance("alice", 100)
		p.SetBalance("bob", math.MaxUint64)

		err := p.Transfer("alice", "bob", 100)

		assert.ErrorIs(t, err, ErrBalanceOverflow)
		assert.Equal(t, uint64(100), p.Balance("alice"))
		assert.Equal(t, uint64(math.MaxUint64), p.Balance("bob"))
	})

	t.Run("transfer to self conserves the balance", func(t *testing.T) {
		p := New[string, uint64]()
		p.SetBalance("alice", 100)

		require.NoError(t, p.Transfer("alice", "alice", 40))

		assert.Equal(t, uint64(100), p.Balance("alice"))
	})
}

func TestDispatch(t *testing.T) {
	t.Run("routes transfer to the operation", func(t *testing.T) {
		p := New[string, uint64]()
		p.SetBalance("alice", 100)

		err := p.Dispatch("alice", Transfer[string, uint64]{To: "bob", Amount: 40})

		require.NoError(t, err)
		assert.Equal(t, uint64(60), p.Balance("alice"))
		assert.Equal(t, uint64(40), p.Balance("bob"))
	})

	t.Run("propagates operation errors unchanged", func(t *testing.T) {
		p := New[string, uint64]()

		err := p.Dispatch("alice", Transfer[string, uint64]{To: "bob", Amount: 1})

		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})
}
