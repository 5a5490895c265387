package cmd

import "go.followtheprocess.codes/cli"

// initCmd returns the init subcommand. Named to avoid colliding with Go's
// reserved init function.
func initCmd() (*cli.Command, error) {
	var debug bool

	return cli.New(
		"init",
		cli.Short("Interactively generate a minimal configuration file"),
		cli.Flag(&debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			a := newApp(debug, cmd)
			return a.Init()
		}),
	)
}
