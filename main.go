package main

import (
	"os"

	"github.com/firefly-engineering/javart/cmd"
	"github.com/firefly-engineering/javart/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
