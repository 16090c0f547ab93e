package farm

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/farmhand-labs/farming-client/pkg/solana"
	"github.com/farmhand-labs/farming-client/pkg/solana/farming"
)

// MigrationResult is the outcome of migrating a single pool. A pool that was
// already migrated, or never used the legacy encoding, produces no result.
type MigrationResult struct {
	Pool      ed25519.PublicKey
	Signature solana.Signature
	Err       error
}

// MigrateFarmingRates scans every pool and submits a rate migration for each
// one still carrying a reward rate only in the legacy 64-bit encoding. A
// failure on one pool is recorded in its result and does not abort the scan.
// Rerunning after a complete pass submits nothing.
func (c *Client) MigrateFarmingRates() ([]MigrationResult, error) {
	records, err := c.ListPools()
	if err != nil {
		return nil, err
	}

	c.log.WithField("pools", len(records)).Info("scanning pools for rate migration")

	var results []MigrationResult
	for _, record := range records {
		if record.Err != nil {
			results = append(results, MigrationResult{
				Pool: record.Address,
				Err:  record.Err,
			})
			continue
		}

		if !record.State.NeedsRateMigration() {
			continue
		}

		instruction := farming.NewMigrateFarmingRateInstruction(
			&farming.MigrateFarmingRateInstructionAccounts{
				Pool: record.Address,
			},
		).ToLegacyInstruction()

		sig, err := c.submit([]solana.Instruction{instruction})
		if err != nil {
			results = append(results, MigrationResult{
				Pool: record.Address,
				Err:  err,
			})
			continue
		}

		c.log.WithFields(logrus.Fields{
			"pool":      base58.Encode(record.Address),
			"signature": base58.Encode(sig[:]),
		}).Info("migrated pool rates")

		results = append(results, MigrationResult{
			Pool:      record.Address,
			Signature: sig,
		})
	}

	return results, nil
}

// VerifyCurrentRatesUnset audits every pool before a first migration pass,
// returning the pools whose 128-bit rate fields are already set. A non-empty
// return means some pools were migrated (or written) out of band.
func (c *Client) VerifyCurrentRatesUnset() ([]ed25519.PublicKey, error) {
	records, err := c.ListPools()
	if err != nil {
		return nil, err
	}

	var violations []ed25519.PublicKey
	for _, record := range records {
		if record.Err != nil {
			return nil, errors.Wrapf(record.Err, "pool %s", base58.Encode(record.Address))
		}

		if !record.State.RewardARateU128.IsZero() || !record.State.RewardBRateU128.IsZero() {
			violations = append(violations, record.Address)
		}
	}

	return violations, nil
}
