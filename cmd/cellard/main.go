package main

import (
	"log"

	"github.com/redhat/wine-cellar/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
