package main

import (
	"os"

	"github.com/soundprediction/go-voyage/cmd/voyage"
)

func main() {
	if err := voyage.Execute(); err != nil {
		os.Exit(1)
	}
}
