package cmd

import (
	"fmt"
	"os"

	"github.com/sealbox/sealbox/internal/encryption"
	"github.com/sealbox/sealbox/internal/storage"
)

// Status shows the resolved configuration and store state. Key material is
// never printed, only its length.
func Status() {
	if _, err := os.Stat(StoreFile); err != nil {
		fmt.Printf("Store:   none (%s not found, using defaults)\n", StoreFile)
	} else {
		store, err := storage.Open(StoreFile)
		if err != nil {
			HandleError(err)
		}
		modified, err := store.GetModified()
		store.Close()
		if err != nil {
			HandleError(err)
		}
		fmt.Printf("Store:   %s (modified %s)\n", StoreFile, modified.Format("2006-01-02 15:04:05"))
	}

	m := NewManagerOrExit()

	driver, _ := m.Lookup(encryption.FieldDriver)
	fmt.Printf("Driver:  %s\n", driver)

	key, _ := m.Lookup(encryption.FieldKey)
	if key == "" {
		fmt.Println("Key:     not set")
	} else {
		fmt.Printf("Key:     set (%d bytes)\n", len(key))
	}

	fmt.Println()
	Drivers()
}
