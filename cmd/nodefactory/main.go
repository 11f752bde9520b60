package main

import (
	"os"

	"github.com/src-d/nodefactory/cmd/nodefactory/command"

	"github.com/jessevdk/go-flags"
)

const (
	name = "nodefactory"
)

var (
	version = "undefined"
	build   = "undefined"
)

func main() {
	parser := flags.NewNamedParser(name, flags.Default)

	parser.AddCommand("probe", command.ProbeDescription, command.ProbeHelp,
		&command.Probe{})

	parser.AddCommand("print", command.PrintDescription, command.PrintHelp,
		&command.Print{})

	parser.AddCommand("version", command.VersionDescription, command.VersionHelp,
		&command.Version{
			Name:    name,
			Version: version,
			Build:   build,
		})

	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrCommandRequired {
			parser.WriteHelp(os.Stdout)
		}

		os.Exit(1)
	}
}
