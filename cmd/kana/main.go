// Package main is the entry point for the kana CLI.
package main

import (
	"os"

	"github.com/f3rmion/kana/cmd/kana/cmd"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
