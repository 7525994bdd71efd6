package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"lifeboat/internal/commands"
)

func main() {
	reg := commands.NewRegistry("lifeboat")
	registerRun(reg)
	registerRender(reg)
	registerInitConfig(reg)

	err := reg.Execute(os.Args[1:])
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return
	case errors.Is(err, commands.ErrUsage):
		fmt.Fprintln(os.Stderr, err)
		reg.Usage(os.Stderr)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "lifeboat:", err)
		os.Exit(1)
	}
}
