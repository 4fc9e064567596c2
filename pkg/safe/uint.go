// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math/big"
)

// Uint64 converts signed integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// BigUint converts signed integers to *big.Int, rejecting negatives. Contract
// arguments typed uint256 on the ABI side go through this.
func BigUint[T ~int | ~int32 | ~int64](v T) (*big.Int, error) {
	u, err := Uint64(v)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(u), nil
}
