package main

import (
	"os"

	"github.com/arthur-debert/csvmv/cmd/csvmv"
)

func main() {
	os.Exit(csvmv.Main())
}
