package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ValidAddress reports whether s is a 20-byte hex address with 0x prefix.
func ValidAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// ChecksumAddress returns the EIP-55 form of a valid address.
func ChecksumAddress(s string) string {
	return common.HexToAddress(s).Hex()
}

// ValidTxHash reports whether s is a 0x-prefixed 32-byte hash.
func ValidTxHash(s string) bool {
	b, err := hexutil.Decode(s)
	return err == nil && len(b) == common.HashLength
}
