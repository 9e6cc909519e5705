package main

import (
	"os"

	"github.com/quickbite/storefront/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
