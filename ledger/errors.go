package ledger

import "github.com/pkg/errors"

var (
	// ErrInsufficientBalance is returned when the caller cannot cover the
	// transfer amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBalanceOverflow is returned when crediting the recipient would
	// exceed the balance type's range.
	ErrBalanceOverflow = errors.New("overflow when adding balance")
)
