package main

import (
	"log"
	"os"

	"github.com/paber33/srs/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("srssim: ")
	if err := cli.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
