package cmd

import (
	"encoding/base64"
	"fmt"
)

// Encrypt reads plaintext from the file (or stdin), encrypts it with the
// resolved driver and key, and writes base64 ciphertext to stdout.
func Encrypt(driver, keyHex, file string) {
	plaintext, err := ReadInput(file)
	if err != nil {
		HandleError(err)
	}

	handler := InitHandler(driver, keyHex)

	ciphertext, err := handler.Encrypt(plaintext, nil)
	if err != nil {
		HandleError(err)
	}

	fmt.Println(base64.StdEncoding.EncodeToString(ciphertext))
}
