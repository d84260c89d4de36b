package main

import (
	"os"

	"github.com/SscSPs/event_split_app/cmd/splitctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
