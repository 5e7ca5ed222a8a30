package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"swap-preview/cmd"
)

func main() {
	// .env is optional; the config file and real environment still apply
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
