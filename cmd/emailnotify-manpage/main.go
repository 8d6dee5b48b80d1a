package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/emailnotify/cmd/emailnotify"
	"github.com/arthur-debert/emailnotify/internal/version"
)

func main() {
	rootCmd := emailnotify.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "EMAILNOTIFY",
		Section: "1",
		Source:  "emailnotify " + version.Version,
		Manual:  "emailnotify manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
