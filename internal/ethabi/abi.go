// Package ethabi encodes and decodes contract call data for the fixed set
// of solidity types the supply-chain contract uses: uint256, address, bool
// and string. It is not a general ABI implementation; unsupported types are
// rejected rather than guessed at.
package ethabi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

const wordSize = 32

// Method describes one contract function: its name and the canonical
// solidity type names of its inputs and outputs.
type Method struct {
	Name    string
	Inputs  []string
	Outputs []string
	Payable bool
}

// Signature returns the canonical signature, e.g. "getProduct(uint256)".
func (m Method) Signature() string {
	return m.Name + "(" + strings.Join(m.Inputs, ",") + ")"
}

// Selector returns the 4-byte function selector for the method.
func (m Method) Selector() [4]byte {
	return SelectorOf(m.Signature())
}

// SelectorOf computes a function selector: the first four bytes of the
// Keccak-256 hash of the canonical signature.
func SelectorOf(signature string) [4]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))

	var sel [4]byte
	copy(sel[:], h.Sum(nil))

	return sel
}

// Pack encodes the selector followed by the ABI-encoded arguments, ready to
// be sent as call data.
func (m Method) Pack(args ...any) ([]byte, error) {
	encoded, err := EncodeValues(m.Inputs, args...)
	if err != nil {
		return nil, fmt.Errorf("packing %s: %w", m.Name, err)
	}

	sel := m.Selector()

	return append(sel[:], encoded...), nil
}

// Unpack decodes a return payload into one Go value per output:
// uint256 -> *big.Int, string -> string, address -> 0x-prefixed lowercase
// string, bool -> bool.
func (m Method) Unpack(data []byte) ([]any, error) {
	vals, err := DecodeValues(m.Outputs, data)
	if err != nil {
		return nil, fmt.Errorf("unpacking %s: %w", m.Name, err)
	}

	return vals, nil
}

// EncodeValues ABI-encodes vals according to types, without a selector.
func EncodeValues(types []string, vals ...any) ([]byte, error) {
	if len(vals) != len(types) {
		return nil, fmt.Errorf("want %d values, got %d", len(types), len(vals))
	}

	headSize := len(types) * wordSize
	head := make([]byte, 0, headSize)

	var tail []byte

	for i, t := range types {
		switch t {
		case "uint256":
			word, err := uint256Word(vals[i])
			if err != nil {
				return nil, fmt.Errorf("arg %d: %w", i, err)
			}

			head = append(head, word...)
		case "address":
			word, err := addressWord(vals[i])
			if err != nil {
				return nil, fmt.Errorf("arg %d: %w", i, err)
			}

			head = append(head, word...)
		case "bool":
			b, ok := vals[i].(bool)
			if !ok {
				return nil, fmt.Errorf("arg %d: want bool, got %T", i, vals[i])
			}

			word := make([]byte, wordSize)
			if b {
				word[wordSize-1] = 1
			}

			head = append(head, word...)
		case "string":
			s, ok := vals[i].(string)
			if !ok {
				return nil, fmt.Errorf("arg %d: want string, got %T", i, vals[i])
			}

			offset, err := uint256Word(uint64(headSize + len(tail)))
			if err != nil {
				return nil, fmt.Errorf("arg %d: %w", i, err)
			}

			head = append(head, offset...)
			tail = append(tail, dynamicBytes([]byte(s))...)
		default:
			return nil, fmt.Errorf("arg %d: unsupported type %q", i, t)
		}
	}

	return append(head, tail...), nil
}

// DecodeValues decodes an ABI-encoded payload (no selector) according to
// types.
func DecodeValues(types []string, data []byte) ([]any, error) {
	if len(data) < len(types)*wordSize {
		return nil, fmt.Errorf("data too short: %d bytes for %d values", len(data), len(types))
	}

	vals := make([]any, len(types))

	for i, t := range types {
		word := data[i*wordSize : (i+1)*wordSize]

		switch t {
		case "uint256":
			vals[i] = new(big.Int).SetBytes(word)
		case "address":
			vals[i] = "0x" + hex.EncodeToString(word[wordSize-20:])
		case "bool":
			vals[i] = word[wordSize-1] == 1
		case "string":
			s, err := stringAt(data, word)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}

			vals[i] = s
		default:
			return nil, fmt.Errorf("value %d: unsupported type %q", i, t)
		}
	}

	return vals, nil
}

func stringAt(data, offsetWord []byte) (string, error) {
	// Subtraction form so a hostile offset cannot overflow the bound;
	// data holds at least one word whenever a string type is present.
	offset := new(big.Int).SetBytes(offsetWord)
	if !offset.IsUint64() || offset.Uint64() > uint64(len(data))-wordSize {
		return "", fmt.Errorf("string offset out of range")
	}

	start := offset.Uint64()

	length := new(big.Int).SetBytes(data[start : start+wordSize])
	if !length.IsUint64() || length.Uint64() > uint64(len(data))-start-wordSize {
		return "", fmt.Errorf("string length out of range")
	}

	end := start + wordSize + length.Uint64()

	return string(data[start+wordSize : end]), nil
}

func dynamicBytes(b []byte) []byte {
	out := make([]byte, wordSize, wordSize+len(b)+wordSize)
	new(big.Int).SetUint64(uint64(len(b))).FillBytes(out)

	out = append(out, b...)
	if pad := len(b) % wordSize; pad != 0 {
		out = append(out, make([]byte, wordSize-pad)...)
	}

	return out
}

func uint256Word(v any) ([]byte, error) {
	word := make([]byte, wordSize)

	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, fmt.Errorf("nil *big.Int")
		}

		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for uint256", n)
		}

		if n.BitLen() > 256 {
			return nil, fmt.Errorf("value overflows uint256")
		}

		n.FillBytes(word)
	case uint64:
		new(big.Int).SetUint64(n).FillBytes(word)
	case int:
		if n < 0 {
			return nil, fmt.Errorf("negative value %d for uint256", n)
		}

		new(big.Int).SetUint64(uint64(n)).FillBytes(word)
	case int64:
		if n < 0 {
			return nil, fmt.Errorf("negative value %d for uint256", n)
		}

		new(big.Int).SetInt64(n).FillBytes(word)
	default:
		return nil, fmt.Errorf("want integer for uint256, got %T", v)
	}

	return word, nil
}

func addressWord(v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("want address string, got %T", v)
	}

	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("address %q: missing 0x prefix", s)
	}

	raw, err := hex.DecodeString(s[2:])
	if err != nil || len(raw) != 20 {
		return nil, fmt.Errorf("invalid address %q", s)
	}

	word := make([]byte, wordSize)
	copy(word[wordSize-20:], raw)

	return word, nil
}
