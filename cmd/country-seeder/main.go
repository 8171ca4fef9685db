package main

import (
	"log"

	"github.com/psds-microservice/country-seeder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
