// main holds the entry logic for the venuerank CLI.
package main

import (
	"github.com/veljkom/venuerank/cmd"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/internal/iostore"
)

// main is the entry point for the venuerank CLI.
func main() {
	cmd.SetStoreManager(iostore.Manager)
	defer iostore.CloseStore()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Failed to stop profiling", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
