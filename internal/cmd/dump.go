package cmd

import (
	"github.com/vhostd/vhostd/internal/app"
	"go.followtheprocess.codes/cli"
)

// dump returns the dump subcommand.
func dump() (*cli.Command, error) {
	var options app.DumpOptions
	var debug bool

	return cli.New(
		"dump",
		cli.Short("Parse a configuration file and print it as JSON, YAML or TOML"),
		cli.RequiredArg("path", "Path to the configuration file"),
		cli.Flag(&options.Format, "format", 'f', "json", "Output format: json, yaml or toml"),
		cli.Flag(&debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			options.Path = cmd.Arg("path")
			a := newApp(debug, cmd)
			return a.Dump(options)
		}),
	)
}
