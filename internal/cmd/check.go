package cmd

import (
	"github.com/vhostd/vhostd/internal/app"
	"go.followtheprocess.codes/cli"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a .conf file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for all
files with the '.conf' extension and any matching files will be validated.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options app.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check configuration files for syntax errors"),
		cli.Long(checkLong),
		cli.OptionalArg("path", "Path to check, may be a directory or file", "."),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			options.Path = cmd.Arg("path")
			a := newApp(options.Debug, cmd)
			return a.Check(options)
		}),
	)
}
