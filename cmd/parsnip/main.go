package main

import (
	"os"

	"github.com/parsnipdev/parsnip/cmd/parsnip/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
