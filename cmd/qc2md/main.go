package main

import (
	"os"

	"github.com/petzku/qc2md/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// cobra already printed the error via RunE propagation
		os.Exit(1)
	}
}
