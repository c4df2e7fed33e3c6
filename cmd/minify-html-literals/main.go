package main

import (
	"os"

	"github.com/arthurevans/minify-html-literals/internal/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
