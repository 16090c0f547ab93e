package system

// ProgramKey is the address of the system program, which is the all-zero key.
//
// https://explorer.solana.com/address/11111111111111111111111111111111
var ProgramKey [32]byte
