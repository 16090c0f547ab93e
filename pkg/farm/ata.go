package farm

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/farmhand-labs/farming-client/pkg/solana"
	"github.com/farmhand-labs/farming-client/pkg/solana/token"
)

// resolveTokenAccount returns the wallet's associated token account for the
// mint. When the account does not exist yet, a creation instruction funded by
// the payer is appended so the account materializes in the same transaction.
// An existing account never produces a creation instruction, but must decode
// as a token account holding the expected mint for the expected owner.
func (c *Client) resolveTokenAccount(
	wallet, mint ed25519.PublicKey,
	instructions []solana.Instruction,
) (ed25519.PublicKey, []solana.Instruction, error) {
	createInstruction, address, err := token.CreateAssociatedTokenAccount(
		c.payer.Public().(ed25519.PublicKey),
		wallet,
		mint,
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive associated token account")
	}

	info, err := c.sol.GetAccountInfo(address, c.commitment)
	switch err {
	case nil:
		var tokenAccount token.Account
		if !tokenAccount.Unmarshal(info.Data) {
			return nil, nil, errors.Errorf("account %s is not a token account", base58.Encode(address))
		}
		if !bytes.Equal(tokenAccount.Mint, mint) || !bytes.Equal(tokenAccount.Owner, wallet) {
			return nil, nil, errors.Errorf("token account %s has an unexpected mint or owner", base58.Encode(address))
		}
		return address, instructions, nil
	case solana.ErrNoAccountInfo:
		c.log.WithField("account", base58.Encode(address)).Debug("creating associated token account")
		return address, append(instructions, createInstruction), nil
	default:
		return nil, nil, errors.Wrap(err, "failed to check associated token account")
	}
}
