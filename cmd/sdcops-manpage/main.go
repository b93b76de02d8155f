package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sdcops/cmd/sdcops"
	"github.com/arthur-debert/sdcops/internal/version"
)

func main() {
	rootCmd := sdcops.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SDCOPS",
		Section: "1",
		Source:  "sdcops " + version.Version,
		Manual:  "sdcops manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
