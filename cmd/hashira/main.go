package main

import (
	"fmt"
	"os"

	"github.com/Amanking2425/catalog-placement-hashira/cmd/hashira/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
