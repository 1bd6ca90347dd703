package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	// Last-resort net: never exit silently on an unexpected failure
	// anywhere in the pipeline.
	defer func() {
		if r := recover(); r != nil {
			log.Error("unexpected failure", "panic", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		log.Error("deploy failed", "err", err)
		os.Exit(1)
	}
}
