package cmd

import (
	"fmt"
	"os"

	"github.com/sealbox/sealbox/internal/cipher"
	"github.com/sealbox/sealbox/internal/crypto"
	"github.com/sealbox/sealbox/internal/storage"
)

// initKeyLength is the generated starter key size in bytes.
const initKeyLength = 32

// Init creates a new .sealbox store with a fresh random key.
func Init(driver string) {
	if _, err := os.Stat(StoreFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists in this directory\n", StoreFile)
		fmt.Fprintf(os.Stderr, "Use 'sealbox status' to see current state\n")
		os.Exit(1)
	}

	registry := cipher.NewRegistry()
	if driver == "" {
		driver = string(registry.Drivers()[0])
	}
	if !registry.Contains(driver) {
		fmt.Fprintf(os.Stderr, "Error: unknown driver: %s\n", driver)
		fmt.Fprintf(os.Stderr, "Run 'sealbox drivers' to list supported drivers\n")
		os.Exit(1)
	}

	key, err := crypto.CreateKey(initKeyLength)
	if err != nil {
		HandleError(err)
	}
	defer crypto.ClearBytes(key)

	store, err := storage.Open(StoreFile)
	if err != nil {
		HandleError(err)
	}
	defer store.Close()

	if err := store.Initialize(); err != nil {
		HandleError(err)
	}
	if err := store.SetDriver(driver); err != nil {
		HandleError(err)
	}
	if err := store.SetKey(key); err != nil {
		HandleError(err)
	}

	fmt.Printf("✓ Initialized %s (driver %s, %d-byte key)\n", StoreFile, driver, initKeyLength)
}
