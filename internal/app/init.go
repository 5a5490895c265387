package app

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
)

const initTemplate = `server {
  listen {{ .Port }};
  host {{ .Host }};
{{- range .ServerNames }}
  server_name {{ . }};
{{- end }}
  location / {
    root {{ .Root }};
    index {{ .Index }};
    autoindex {{ .Autoindex }};
  }
}
`

// initAnswers holds the wizard's collected input, rendered through
// initTemplate.
type initAnswers struct {
	Port        string
	Host        string
	Root        string
	Index       string
	Autoindex   string
	ServerNames []string
}

// Init runs an interactive wizard that prompts for the fields of a minimal
// server block and writes the resulting configuration source to stdout. It
// is the generative inverse of Check/Dump.
func (a App) Init() error {
	answers := initAnswers{
		Port:      "80",
		Host:      "0.0.0.0",
		Root:      "/var/www/html",
		Index:     "index.html",
		Autoindex: "off",
	}

	var serverNames string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Listen port").
				Value(&answers.Port).
				Validate(validatePort),
			huh.NewInput().
				Title("Host").
				Value(&answers.Host),
			huh.NewInput().
				Title("Server names (comma separated, optional)").
				Value(&serverNames),
			huh.NewInput().
				Title("Document root").
				Value(&answers.Root),
			huh.NewInput().
				Title("Index files (comma separated)").
				Value(&answers.Index),
			huh.NewSelect[string]().
				Title("Enable autoindex?").
				Options(huh.NewOption("off", "off"), huh.NewOption("on", "on")).
				Value(&answers.Autoindex),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("could not run wizard: %w", err)
	}

	for _, name := range strings.Split(serverNames, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			answers.ServerNames = append(answers.ServerNames, name)
		}
	}

	tmpl, err := template.New("init").Parse(initTemplate)
	if err != nil {
		return fmt.Errorf("could not parse config template: %w", err)
	}

	return tmpl.Execute(a.stdout, answers)
}

func validatePort(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
