package main

import (
	"context"
	"os"

	"github.com/Gulur101/quran-toolkit/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
