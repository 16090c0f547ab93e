package system

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramKey(t *testing.T) {
	decoded, err := base58.Decode("11111111111111111111111111111111")
	require.NoError(t, err)
	assert.EqualValues(t, decoded, ProgramKey[:])
}

func TestRentSysVar(t *testing.T) {
	assert.Len(t, RentSysVar, ed25519.PublicKeySize)
	assert.Equal(t, "SysvarRent111111111111111111111111111111111", base58.Encode(RentSysVar))
}
