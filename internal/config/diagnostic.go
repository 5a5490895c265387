// Package config implements the configuration front-end: tokenizing and
// parsing an nginx-like virtual host configuration into a typed model. The
// diagnostic type itself lives in internal/config/diag so that the
// tokenizer, registry and parser can depend on it without importing this
// package (which depends on all three to expose Parse); the aliases below
// keep the public surface at internal/config.
package config

import "github.com/vhostd/vhostd/internal/config/diag"

type (
	// Kind tags the three classes of failure the front-end can raise.
	Kind = diag.Kind
	// Position locates a diagnostic in the source.
	Position = diag.Position
	// Diagnostic is the single error type raised by the tokenizer and
	// parser.
	Diagnostic = diag.Diagnostic
)

const (
	TokenizerError  = diag.TokenizerError
	SyntaxError     = diag.SyntaxError
	UnexpectedToken = diag.UnexpectedToken
)

// New constructs a Diagnostic with an already-rendered context window.
func New(kind Kind, pos Position, msg, context string) *Diagnostic {
	return diag.New(kind, pos, msg, context)
}

// NewTokenizerError constructs a TokenizerError whose context window is the
// source line containing pos.Offset.
func NewTokenizerError(pos Position, msg, src string) *Diagnostic {
	return diag.NewTokenizerError(pos, msg, src)
}

// SourceLineContext extracts the single source line containing the given
// byte offset.
func SourceLineContext(src string, offset int) string {
	return diag.SourceLineContext(src, offset)
}
