package main

import (
	"log"

	"github.com/skillradar/skillradar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
