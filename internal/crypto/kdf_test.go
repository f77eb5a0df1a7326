package crypto

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"
)

// mustHex decodes a hex string or fails the test
func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in test data: %v", err)
	}
	return b
}

// byteRange returns the bytes from..from+n-1
func byteRange(from, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(from + i)
	}
	return b
}

func TestDeriveKeyRFC5869Vectors(t *testing.T) {
	// RFC 5869 appendix A, SHA-256 cases with explicit salt. Case 3 (empty
	// salt) is intentionally excluded: the zero-block default here uses the
	// output length, not the digest size.
	cases := []struct {
		name   string
		ikm    []byte
		salt   []byte
		info   []byte
		length int
		okm    string
	}{
		{
			name:   "A.1 basic",
			ikm:    bytes.Repeat([]byte{0x0b}, 22),
			salt:   byteRange(0x00, 13),
			info:   byteRange(0xf0, 10),
			length: 42,
			okm: "3cb25f25faacd57a90434f64d0362f2a" +
				"2d2d0a90cf1a5a4c5db02d56ecc4c5bf" +
				"34007208d5b887185865",
		},
		{
			name:   "A.2 longer inputs",
			ikm:    byteRange(0x00, 80),
			salt:   byteRange(0x60, 80),
			info:   byteRange(0xb0, 80),
			length: 82,
			okm: "b11e398dc80327a1c8e7f78c596a4934" +
				"4f012eda2d4efad8a050cc4c19afa97c" +
				"59045a99cac7827271cb41c65e590e09" +
				"da3275600c2f09b8367793a9aca3db71" +
				"cc30c58179ec3e87c14c01d5c1f3434f" +
				"1d87",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			okm, err := DeriveKey(tc.ikm, sha256.New, tc.salt, tc.length, tc.info)
			if err != nil {
				t.Fatalf("DeriveKey failed: %v", err)
			}
			want := mustHex(t, tc.okm)
			if !bytes.Equal(okm, want) {
				t.Errorf("OKM mismatch:\ngot  %x\nwant %x", okm, want)
			}
		})
	}
}

func TestDeriveKeyEmptySaltUsesOutputLengthZeroBlock(t *testing.T) {
	ikm := []byte("starter key material")
	info := []byte("context")

	// Empty and nil salt must behave like an explicit zero block of the
	// output length.
	for _, length := range []int{16, 42, 64} {
		implicit, err := DeriveKey(ikm, sha512.New, nil, length, info)
		if err != nil {
			t.Fatalf("DeriveKey with nil salt failed: %v", err)
		}
		explicit, err := DeriveKey(ikm, sha512.New, make([]byte, length), length, info)
		if err != nil {
			t.Fatalf("DeriveKey with explicit zero block failed: %v", err)
		}
		if !bytes.Equal(implicit, explicit) {
			t.Errorf("length %d: nil salt output differs from %d-byte zero block", length, length)
		}

		empty, err := DeriveKey(ikm, sha512.New, []byte{}, length, info)
		if err != nil {
			t.Fatalf("DeriveKey with empty salt failed: %v", err)
		}
		if !bytes.Equal(implicit, empty) {
			t.Errorf("length %d: nil and empty salt outputs differ", length)
		}
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	ikm := []byte("the quick brown fox")
	salt := []byte("salt")
	info := []byte("info")

	first, err := DeriveKey(ikm, sha512.New, salt, 64, info)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	second, err := DeriveKey(ikm, sha512.New, salt, 64, info)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different output")
	}
}

func TestDeriveKeyLengthLaw(t *testing.T) {
	// Output must be byte-exact for any valid length, including lengths
	// that are not multiples of the digest size.
	ikm := []byte{0xc3, 0xa9, 0xe2, 0x82, 0xac} // non-ASCII byte sequence
	for _, length := range []int{1, 16, 31, 32, 33, 64, 100, 255} {
		out, err := DeriveKey(ikm, sha256.New, []byte("s"), length, nil)
		if err != nil {
			t.Fatalf("DeriveKey(length=%d) failed: %v", length, err)
		}
		if len(out) != length {
			t.Errorf("DeriveKey(length=%d) returned %d bytes", length, len(out))
		}
	}
}

func TestDeriveKeyErrors(t *testing.T) {
	if _, err := DeriveKey(nil, sha256.New, nil, 32, nil); !errors.Is(err, ErrEmptyKeyMaterial) {
		t.Errorf("empty ikm: expected ErrEmptyKeyMaterial, got %v", err)
	}
	if _, err := DeriveKey([]byte("ikm"), sha256.New, nil, 0, nil); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("zero length: expected ErrInvalidLength, got %v", err)
	}
	if _, err := DeriveKey([]byte("ikm"), sha256.New, nil, -1, nil); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("negative length: expected ErrInvalidLength, got %v", err)
	}
	// 255 blocks is the RFC 5869 ceiling for a given digest
	if _, err := DeriveKey([]byte("ikm"), sha256.New, nil, 255*32+1, nil); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("oversized length: expected ErrInvalidLength, got %v", err)
	}
}

func TestCreateKey(t *testing.T) {
	key, err := CreateKey(32)
	if err != nil {
		t.Fatalf("CreateKey failed: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("Expected 32 bytes, got %d", len(key))
	}

	// Two fresh keys colliding is possible but astronomically unlikely
	key2, err := CreateKey(32)
	if err != nil {
		t.Fatalf("CreateKey failed: %v", err)
	}
	if bytes.Equal(key, key2) {
		t.Error("Two CreateKey calls produced identical keys")
	}

	if _, err := CreateKey(0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("zero length: expected ErrInvalidLength, got %v", err)
	}
}

func TestClearBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	ClearBytes(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d not cleared: %d", i, v)
		}
	}
}

func TestConstantTimeCompare(t *testing.T) {
	if !ConstantTimeCompare([]byte("abc"), []byte("abc")) {
		t.Error("equal slices compared unequal")
	}
	if ConstantTimeCompare([]byte("abc"), []byte("abd")) {
		t.Error("unequal slices compared equal")
	}
	if ConstantTimeCompare([]byte("abc"), []byte("ab")) {
		t.Error("different lengths compared equal")
	}
}
