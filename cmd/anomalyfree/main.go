package main

import (
	"os"

	"github.com/alexshd/anomalyfree/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
