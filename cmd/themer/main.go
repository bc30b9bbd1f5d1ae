package main

import (
	"os"

	"github.com/BrandonKowalski/themer/cmd/themer/internal/cli"
	"github.com/BrandonKowalski/themer/pkg/themer"
)

func main() {
	app := cli.NewApp()
	err := app.CreateRootCommand().Execute()
	themer.Close()
	if err != nil {
		os.Exit(1)
	}
}
