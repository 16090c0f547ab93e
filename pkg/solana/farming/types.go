package farming

import (
	"encoding/binary"
	"math/big"
)

// Uint128 is a little-endian 128-bit unsigned integer, stored as two 64-bit
// limbs. Reward rates use this width to avoid the precision loss the legacy
// 64-bit encoding suffered from.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

func NewUint128FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

func (v Uint128) IsZero() bool {
	return v.Lo == 0 && v.Hi == 0
}

func (v Uint128) BigInt() *big.Int {
	hi := new(big.Int).Lsh(new(big.Int).SetUint64(v.Hi), 64)
	return hi.Or(hi, new(big.Int).SetUint64(v.Lo))
}

func (v Uint128) String() string {
	return v.BigInt().String()
}

func putUint128(dst []byte, v Uint128, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v.Lo)
	binary.LittleEndian.PutUint64(dst[*offset+8:], v.Hi)
	*offset += 16
}
func getUint128(src []byte, dst *Uint128, offset *int) {
	dst.Lo = binary.LittleEndian.Uint64(src[*offset:])
	dst.Hi = binary.LittleEndian.Uint64(src[*offset+8:])
	*offset += 16
}
