package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-env-config/internal/cli"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := cli.NewRootCommand(os.Stdout, os.Stderr, cli.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "confbuild:", err)
		os.Exit(1)
	}
}
