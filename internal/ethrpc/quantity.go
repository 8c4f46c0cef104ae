package ethrpc

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Hex codecs for the two wire encodings the JSON-RPC API uses: quantities
// ("0x" + minimal hex digits, "0x0" for zero) and unformatted data
// ("0x" + two hex digits per byte, "0x" for empty).

// EncodeUint64 encodes v as a hex quantity.
func EncodeUint64(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

// EncodeBig encodes v as a hex quantity. v must be non-negative; nil is
// treated as zero.
func EncodeBig(v *big.Int) string {
	if v == nil || v.Sign() == 0 {
		return "0x0"
	}

	return "0x" + v.Text(16)
}

// DecodeUint64 decodes a hex quantity into a uint64.
func DecodeUint64(s string) (uint64, error) {
	digits, err := stripPrefix(s)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}

	return v, nil
}

// DecodeBig decodes a hex quantity of arbitrary size.
func DecodeBig(s string) (*big.Int, error) {
	digits, err := stripPrefix(s)
	if err != nil {
		return nil, err
	}

	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("invalid quantity %q", s)
	}

	return v, nil
}

// EncodeBytes encodes b as unformatted hex data.
func EncodeBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// DecodeBytes decodes unformatted hex data. "0x" decodes to an empty slice,
// which is how providers report absent contract code.
func DecodeBytes(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("invalid data %q: missing 0x prefix", s)
	}

	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, fmt.Errorf("invalid data %q: %w", s, err)
	}

	return b, nil
}

func stripPrefix(s string) (string, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", fmt.Errorf("invalid quantity %q: missing 0x prefix", s)
	}

	digits := s[2:]
	if digits == "" {
		return "", fmt.Errorf("invalid quantity %q: no digits", s)
	}

	return digits, nil
}
