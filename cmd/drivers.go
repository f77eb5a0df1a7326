package cmd

import (
	"fmt"

	"github.com/sealbox/sealbox/internal/cipher"
)

// Drivers lists the supported drivers in preference order with the result
// of each availability probe.
func Drivers() {
	registry := cipher.NewRegistry()
	availability := registry.Probe()

	fmt.Println("Supported drivers:")
	for _, d := range registry.Drivers() {
		mark := "✗"
		if availability[d] {
			mark = "✓"
		}
		fmt.Printf("  %s %s\n", mark, d)
	}
}
