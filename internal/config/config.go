package config

import (
	"github.com/vhostd/vhostd/internal/config/model"
	"github.com/vhostd/vhostd/internal/config/parser"
	"github.com/vhostd/vhostd/internal/config/tokenizer"
)

// Parse tokenizes and parses src, producing a typed configuration tree or
// the first diagnostic encountered. It is the sole entrypoint external
// packages should use; tokenizer and parser remain independently testable
// but Parse is what collaborators (internal/app, internal/loader callers)
// call.
func Parse(src string) (*model.Config, error) {
	tokens, err := tokenizer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	return parser.Parse(tokens)
}
