// Package genesis loads the initial state document: a TOML file naming the
// chain and the accounts that start with a balance. Seeding writes balances
// directly through the ledger's administrative SetBalance, bypassing
// dispatch; it is the one state mutation that does not go through a block.
package genesis

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"gopallet/runtime"
)

// Account is one seeded entry in the genesis document.
type Account struct {
	ID      string          `toml:"id"`
	Balance runtime.Balance `toml:"balance"`
}

// Spec is the decoded genesis document.
type Spec struct {
	Chain    string    `toml:"chain"`
	Accounts []Account `toml:"account"`
}

// Load reads and validates a genesis document from path.
func Load(path string) (Spec, error) {
	var spec Spec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return Spec{}, errors.Wrap(err, "load genesis")
	}

	if spec.Chain == "" {
		spec.Chain = "dev"
	}

	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Validate rejects documents that would seed ambiguous state.
func (s Spec) Validate() error {
	seen := make(map[string]struct{}, len(s.Accounts))
	for _, acct := range s.Accounts {
		if acct.ID == "" {
			return errors.New("genesis: account with empty id")
		}
		if _, dup := seen[acct.ID]; dup {
			return errors.Errorf("genesis: duplicate account %q", acct.ID)
		}
		seen[acct.ID] = struct{}{}
	}
	return nil
}

// Apply seeds the runtime's ledger with the document's balances.
func (s Spec) Apply(rt *runtime.Runtime) {
	for _, acct := range s.Accounts {
		rt.Ledger().SetBalance(acct.ID, acct.Balance)
	}
}
