package ethrpc

import (
	"math/big"
	"testing"
)

func TestQuantityCodec(t *testing.T) {
	if got := EncodeUint64(0); got != "0x0" {
		t.Errorf("EncodeUint64(0) = %q", got)
	}

	if got := EncodeUint64(1337); got != "0x539" {
		t.Errorf("EncodeUint64(1337) = %q", got)
	}

	if got := EncodeBig(nil); got != "0x0" {
		t.Errorf("EncodeBig(nil) = %q", got)
	}

	ten, _ := new(big.Int).SetString("10000000000000000000", 10)
	if got := EncodeBig(ten); got != "0x8ac7230489e80000" {
		t.Errorf("EncodeBig(10e18) = %q", got)
	}

	v, err := DecodeUint64("0x539")
	if err != nil || v != 1337 {
		t.Errorf("DecodeUint64(0x539) = %d, %v", v, err)
	}

	b, err := DecodeBig("0xde0b6b3a7640000")
	if err != nil || b.String() != "1000000000000000000" {
		t.Errorf("DecodeBig = %s, %v", b, err)
	}

	for _, bad := range []string{"", "539", "0x", "0xzz"} {
		if _, err := DecodeUint64(bad); err == nil {
			t.Errorf("DecodeUint64(%q): expected error", bad)
		}

		if _, err := DecodeBig(bad); err == nil {
			t.Errorf("DecodeBig(%q): expected error", bad)
		}
	}
}

func TestDataCodec(t *testing.T) {
	if got := EncodeBytes(nil); got != "0x" {
		t.Errorf("EncodeBytes(nil) = %q", got)
	}

	if got := EncodeBytes([]byte{0xde, 0xad}); got != "0xdead" {
		t.Errorf("EncodeBytes = %q", got)
	}

	// "0x" is how providers report absent contract code.
	b, err := DecodeBytes("0x")
	if err != nil || len(b) != 0 {
		t.Errorf("DecodeBytes(0x) = %v, %v", b, err)
	}

	b, err = DecodeBytes("0xdead")
	if err != nil || len(b) != 2 || b[0] != 0xde || b[1] != 0xad {
		t.Errorf("DecodeBytes(0xdead) = %v, %v", b, err)
	}

	for _, bad := range []string{"dead", "0xd", "0xgg"} {
		if _, err := DecodeBytes(bad); err == nil {
			t.Errorf("DecodeBytes(%q): expected error", bad)
		}
	}
}
