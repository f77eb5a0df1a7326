package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// Decrypt reads base64 ciphertext from the file (or stdin), decrypts it with
// the resolved driver and key, and writes the plaintext to stdout.
func Decrypt(driver, keyHex, file string) {
	encoded, err := ReadInput(file)
	if err != nil {
		HandleError(err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: input is not valid base64: %s\n", err)
		os.Exit(1)
	}

	handler := InitHandler(driver, keyHex)

	plaintext, err := handler.Decrypt(ciphertext, nil)
	if err != nil {
		HandleError(err)
	}

	os.Stdout.Write(plaintext)
}
