// Package parser implements the recursive-descent parser that turns a
// token stream into a *model.Config, dispatching directives through
// internal/config/registry and enforcing block structure and duplicate
// detection.
package parser

import (
	"fmt"
	"strings"

	"github.com/vhostd/vhostd/internal/config/diag"
	"github.com/vhostd/vhostd/internal/config/model"
	"github.com/vhostd/vhostd/internal/config/registry"
	"github.com/vhostd/vhostd/internal/config/token"
)

// contextWindowRadius is the number of tokens shown before and after the
// token a diagnostic points at.
const contextWindowRadius = 2

// parser walks a token vector once, left to right, never touching the
// source bytes.
type parser struct {
	tokens []token.Token
	pos    int
}

// Parse consumes tokens and returns the typed configuration tree, or the
// first diagnostic encountered. Parsing is all-or-nothing: no partial
// Config is ever returned alongside an error.
func Parse(tokens []token.Token) (*model.Config, error) {
	p := &parser{tokens: tokens}
	return p.parseConfig()
}

func (p *parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return token.EOF(0, 0, 0)
	}
	return p.tokens[p.pos]
}

func (p *parser) peek(n int) token.Token {
	i := p.pos + n
	if i < 0 || i >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return token.EOF(0, 0, 0)
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) lookBehind(n int) token.Token {
	i := p.pos - n
	if i < 0 {
		return token.EOF(0, 0, 0)
	}
	return p.tokens[i]
}

func (p *parser) advance() token.Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func positionOf(t token.Token) diag.Position {
	return diag.Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// contextWindow renders the token-window context centered on the token at
// idx: contextWindowRadius tokens before and after, the token at idx
// prefixed with ">> " and the rest with three spaces.
func (p *parser) contextWindow(idx int) string {
	start := idx - contextWindowRadius
	if start < 0 {
		start = 0
	}
	end := idx + contextWindowRadius
	if end > len(p.tokens)-1 {
		end = len(p.tokens) - 1
	}

	var lines []string
	for i := start; i <= end; i++ {
		if i < 0 || i >= len(p.tokens) {
			continue
		}
		t := p.tokens[i]
		prefix := "   "
		if i == idx {
			prefix = ">> "
		}
		lines = append(lines, fmt.Sprintf("%s[Token kind=%q value=%q line=%d column=%d]",
			prefix, t.Kind.String(), t.Lexeme, t.Line, t.Column))
	}
	return strings.Join(lines, "\n")
}

func (p *parser) syntaxErrAt(idx int, msg string) *diag.Diagnostic {
	t := p.tokenAt(idx)
	return diag.New(diag.SyntaxError, positionOf(t), msg, p.contextWindow(idx))
}

func (p *parser) unexpectedErrAt(idx int, msg string) *diag.Diagnostic {
	t := p.tokenAt(idx)
	return diag.New(diag.UnexpectedToken, positionOf(t), msg, p.contextWindow(idx))
}

func (p *parser) tokenAt(idx int) token.Token {
	if idx < 0 || idx >= len(p.tokens) {
		return token.EOF(0, 0, 0)
	}
	return p.tokens[idx]
}

// expect consumes the current token if it matches kind, otherwise fails
// with an UnexpectedToken diagnostic.
func (p *parser) expect(kind token.Kind, context string) (token.Token, error) {
	idx := p.pos
	cur := p.current()
	if !cur.Is(kind) {
		return token.Token{}, p.unexpectedErrAt(idx,
			fmt.Sprintf("Expected %s, but got %s for %s", kind, cur.Kind, context))
	}
	return p.advance(), nil
}

// expectOneOf consumes the current token if it matches any of kinds,
// otherwise fails with an UnexpectedToken diagnostic.
func (p *parser) expectOneOf(kinds []token.Kind, context string) (token.Token, error) {
	idx := p.pos
	cur := p.current()
	if !cur.Is(kinds...) {
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		return token.Token{}, p.unexpectedErrAt(idx,
			fmt.Sprintf("Expected one of [%s], but got %s for %s", strings.Join(names, ", "), cur.Kind, context))
	}
	return p.advance(), nil
}

// parseConfig implements the top-level grammar: one or more server blocks
// and nothing else.
func (p *parser) parseConfig() (*model.Config, error) {
	if p.current().Is(token.Eof) {
		return nil, p.syntaxErrAt(p.pos, "Empty configuration")
	}

	cfg := &model.Config{}

	for {
		if !p.current().Is(token.KeywordServer) {
			return nil, p.unexpectedErrAt(p.pos, "Expected 'server' block")
		}

		server, err := p.parseServerBlock()
		if err != nil {
			return nil, err
		}
		cfg.Servers = append(cfg.Servers, *server)

		switch {
		case p.current().Is(token.KeywordServer):
			continue
		case p.current().Is(token.Eof):
			return cfg, nil
		default:
			return nil, p.unexpectedErrAt(p.pos, "Unexpected token after server block")
		}
	}
}

func (p *parser) parseServerBlock() (*model.Server, error) {
	p.advance() // 'server'

	if _, err := p.expect(token.LBrace, "server block"); err != nil {
		return nil, err
	}

	server := model.NewServer()
	seen := make(map[string]bool)

	for !p.current().Is(token.RBrace) {
		if p.current().Is(token.Eof) {
			return nil, p.unexpectedErrAt(p.pos, "Expected RBrace, but got Eof for server block")
		}

		if p.current().Is(token.KeywordLocation) {
			loc, err := p.parseLocationBlock()
			if err != nil {
				return nil, err
			}
			server.Locations = append(server.Locations, *loc)
			continue
		}

		name := strings.ToLower(p.current().Lexeme)
		if err := p.checkDuplicate(seen, name, registry.ServerRepeatable); err != nil {
			return nil, err
		}
		if err := p.parseServerDirective(&server, name); err != nil {
			return nil, err
		}
	}

	p.advance() // '}'
	return &server, nil
}

func (p *parser) parseLocationBlock() (*model.Location, error) {
	p.advance() // 'location'

	pathTok, err := p.expectOneOf([]token.Kind{token.String, token.Identifier}, "location path")
	if err != nil {
		return nil, err
	}
	loc := model.NewLocation(pathTok.Lexeme)

	if _, err := p.expect(token.LBrace, "location block"); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)

	for !p.current().Is(token.RBrace) {
		if p.current().Is(token.Eof) {
			return nil, p.unexpectedErrAt(p.pos, "Expected RBrace, but got Eof for location block")
		}

		name := strings.ToLower(p.current().Lexeme)
		if err := p.checkDuplicate(seen, name, registry.LocationRepeatable); err != nil {
			return nil, err
		}
		if err := p.parseLocationDirective(&loc, name); err != nil {
			return nil, err
		}
	}

	p.advance() // '}'
	return &loc, nil
}

// checkDuplicate records name as seen in the current block, failing unless
// name is repeatable or this is its first occurrence.
func (p *parser) checkDuplicate(seen map[string]bool, name string, repeatable map[string]bool) error {
	if seen[name] && !repeatable[name] {
		return p.syntaxErrAt(p.pos, fmt.Sprintf("Duplicate directive: '%s'", name))
	}
	seen[name] = true
	return nil
}

// collectArgs gathers the String/Number/Identifier tokens following a
// directive keyword, up to (not including) the terminating semicolon.
func (p *parser) collectArgs() []string {
	var args []string
	for p.current().Is(token.String, token.Number, token.Identifier) {
		args = append(args, p.current().Lexeme)
		p.advance()
	}
	return args
}

func (p *parser) parseServerDirective(s *model.Server, name string) error {
	idx := p.pos
	tok := p.advance()

	args := p.collectArgs()

	if _, err := p.expect(token.Semicolon, fmt.Sprintf("directive '%s'", name)); err != nil {
		return err
	}

	handler, ok := registry.ServerDirectives[name]
	if !ok {
		return p.syntaxErrAt(idx, fmt.Sprintf("Unknown directive: '%s'", name))
	}

	return handler(s, args, positionOf(tok), p.contextWindow(idx))
}

func (p *parser) parseLocationDirective(l *model.Location, name string) error {
	idx := p.pos
	tok := p.advance()

	args := p.collectArgs()

	if _, err := p.expect(token.Semicolon, fmt.Sprintf("directive '%s'", name)); err != nil {
		return err
	}

	handler, ok := registry.LocationDirectives[name]
	if !ok {
		return p.syntaxErrAt(idx, fmt.Sprintf("Unknown directive: '%s'", name))
	}

	return handler(l, args, positionOf(tok), p.contextWindow(idx))
}
