package main

import (
	"log"
	"os"

	"github.com/plieapp/plie/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
