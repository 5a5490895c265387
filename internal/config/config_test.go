package config_test

import (
	"testing"

	"github.com/vhostd/vhostd/internal/config"
	"go.followtheprocess.codes/test"
)

func TestParseValid(t *testing.T) {
	cfg, err := config.Parse("server { listen 8080; }")
	test.Ok(t, err)
	test.Equal(t, len(cfg.Servers), 1)
	test.Equal(t, cfg.Servers[0].Port, 8080)
}

func TestParseTokenizerErrorPropagates(t *testing.T) {
	_, err := config.Parse("server { host \"unterminated")
	test.True(t, err != nil)

	diag, ok := err.(*config.Diagnostic)
	test.True(t, ok, test.Context("expected a *config.Diagnostic, got %T", err))
	test.Equal(t, diag.Kind, config.TokenizerError)
}

func TestParseSyntaxErrorPropagates(t *testing.T) {
	_, err := config.Parse("")
	test.True(t, err != nil)

	diag, ok := err.(*config.Diagnostic)
	test.True(t, ok, test.Context("expected a *config.Diagnostic, got %T", err))
	test.Equal(t, diag.Kind, config.SyntaxError)
}
