package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/npmpath/cmd/npmpath/commands"
	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/arthur-debert/npmpath/pkg/style"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := commands.NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	format := style.DetectFormat(os.Stderr)
	style.Configure(format)
	fmt.Fprintln(os.Stderr, style.NewRenderer(format).RenderError(err))
	return 1
}
