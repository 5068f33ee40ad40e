// catalogctl maintains catalog files and runs the search engine locally.
package main

import (
	"os"

	"github.com/kailas-cloud/vidriera/cmd/catalogctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
