package main

import (
	"os"

	"github.com/bananabr/discourse/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
