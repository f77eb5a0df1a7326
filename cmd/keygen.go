package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sealbox/sealbox/internal/crypto"
)

// Keygen prints a fresh random key as hex, suitable for --key or SEALBOX_KEY.
func Keygen(length int) {
	if length <= 0 {
		fmt.Fprintf(os.Stderr, "Error: key length must be positive, got %d\n", length)
		os.Exit(1)
	}

	key, err := crypto.CreateKey(length)
	if err != nil {
		HandleError(err)
	}
	defer crypto.ClearBytes(key)

	fmt.Println(hex.EncodeToString(key))
}
