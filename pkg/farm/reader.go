package farm

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/farmhand-labs/farming-client/pkg/solana"
	"github.com/farmhand-labs/farming-client/pkg/solana/farming"
)

// PoolRecord pairs a pool address with its decoded state. Err is set, and
// State nil, when the account data failed layout validation.
type PoolRecord struct {
	Address ed25519.PublicKey
	State   *farming.PoolAccount
	Err     error
}

// GetPool fetches and decodes the pool state account.
func (c *Client) GetPool(pool ed25519.PublicKey) (*farming.PoolAccount, error) {
	info, err := c.sol.GetAccountInfo(pool, c.commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrPoolNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool account")
	}

	var state farming.PoolAccount
	if err := state.Unmarshal(info.Data); err != nil {
		return nil, errors.Wrap(err, "failed to decode pool account")
	}

	return &state, nil
}

// GetUser fetches and decodes the owner's staking record in the pool.
func (c *Client) GetUser(pool, owner ed25519.PublicKey) (*farming.UserAccount, error) {
	user, _, err := farming.GetUserAddress(pool, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive user address")
	}

	info, err := c.sol.GetAccountInfo(user, c.commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user account")
	}

	var state farming.UserAccount
	if err := state.Unmarshal(info.Data); err != nil {
		return nil, errors.Wrap(err, "failed to decode user account")
	}

	return &state, nil
}

// ListPools returns every pool account owned by the program. Accounts whose
// data fails layout validation are returned with Err set rather than
// aborting the listing.
func (c *Client) ListPools() ([]PoolRecord, error) {
	accounts, err := c.sol.GetProgramAccounts(farming.PROGRAM_ID, 0, farming.PoolDiscriminator())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pool accounts")
	}

	records := make([]PoolRecord, 0, len(accounts))
	for _, account := range accounts {
		record := PoolRecord{
			Address: account.PublicKey,
		}

		var state farming.PoolAccount
		if err := state.Unmarshal(account.Account.Data); err != nil {
			record.Err = errors.Wrap(err, "failed to decode pool account")
		} else {
			record.State = &state
		}

		records = append(records, record)
	}

	return records, nil
}
