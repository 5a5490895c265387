// Package registry holds the directive handler tables for server and
// location blocks: the arity rules, value validation, and the numeric and
// byte-size parsers that back them.
package registry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vhostd/vhostd/internal/config/diag"
	"github.com/vhostd/vhostd/internal/config/model"
)

// ServerHandler applies one server-level directive's arguments to s.
type ServerHandler func(s *model.Server, args []string, pos diag.Position, context string) error

// LocationHandler applies one location-level directive's arguments to l.
type LocationHandler func(l *model.Location, args []string, pos diag.Position, context string) error

// HTTPMethods is the closed set of method names the methods directive
// accepts.
var HTTPMethods = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"CONNECT": true,
	"OPTIONS": true,
	"TRACE":   true,
	"PATCH":   true,
}

// ServerRepeatable names the server-level directives allowed to appear more
// than once in a block.
var ServerRepeatable = map[string]bool{
	"error_page": true,
}

// LocationRepeatable names the location-level directives allowed to appear
// more than once in a block.
var LocationRepeatable = map[string]bool{
	"methods": true,
}

// ServerDirectives maps a lowercase directive name to its handler.
var ServerDirectives = map[string]ServerHandler{
	"listen":               handleListen,
	"host":                 handleHost,
	"server_name":          handleServerName,
	"client_max_body_size": handleClientMaxBodySize,
	"error_page":           handleErrorPage,
	"server_tokens":        handleServerTokens,
}

// LocationDirectives maps a lowercase directive name to its handler.
var LocationDirectives = map[string]LocationHandler{
	"root":          handleRoot,
	"index":         handleIndex,
	"autoindex":     handleAutoindex,
	"methods":       handleMethods,
	"upload_store":  handleUploadStore,
	"cgi_extension": handleCgiExtension,
	"return":        handleReturn,
	"alias":         handleAlias,
	"try_files":     handleTryFiles,
}

func exactArity(name string, args []string, n int, pos diag.Position, context string) error {
	if len(args) != n {
		return diag.New(diag.SyntaxError, pos,
			fmt.Sprintf("Directive '%s' takes exactly %d argument(s), but got %d", name, n, len(args)), context)
	}
	return nil
}

func minArity(name string, args []string, n int, pos diag.Position, context string) error {
	if len(args) < n {
		return diag.New(diag.SyntaxError, pos,
			fmt.Sprintf("Directive '%s' requires at least %d argument(s), but got %d", name, n, len(args)), context)
	}
	return nil
}

// parseDecimalStrict decodes a full-string non-negative decimal integer.
// ok is false when v contains any non-digit byte (including empty input);
// overflow is true when the value does not fit in an int64.
func parseDecimalStrict(v string) (n int64, ok bool, overflow bool) {
	if v == "" {
		return 0, false, false
	}
	var val int64
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c < '0' || c > '9' {
			return 0, false, false
		}
		d := int64(c - '0')
		if val > (math.MaxInt64-d)/10 {
			return 0, true, true
		}
		val = val*10 + d
	}
	return val, true, false
}

// ParseInteger decodes a full-string decimal integer for the named field,
// producing spec-shaped diagnostics on failure.
func ParseInteger(field, v string, pos diag.Position, context string) (int64, error) {
	n, ok, overflow := parseDecimalStrict(v)
	if !ok {
		return 0, diag.New(diag.SyntaxError, pos, fmt.Sprintf("Invalid number for '%s': %s", field, v), context)
	}
	if overflow {
		return 0, diag.New(diag.SyntaxError, pos,
			fmt.Sprintf("Invalid number for '%s': %s (out of integer range)", field, v), context)
	}
	return n, nil
}

// ParseByteSize decodes a decimal integer with an optional trailing k/K,
// m/M or g/G multiplier suffix.
func ParseByteSize(field, v string, pos diag.Position, context string) (int64, error) {
	invalid := func() error {
		return diag.New(diag.SyntaxError, pos, fmt.Sprintf("Invalid size format for '%s': %s", field, v), context)
	}

	if v == "" {
		return 0, invalid()
	}

	digits := v
	mult := int64(1)

	switch v[len(v)-1] {
	case 'k', 'K':
		mult = 1024
		digits = v[:len(v)-1]
	case 'm', 'M':
		mult = 1024 * 1024
		digits = v[:len(v)-1]
	case 'g', 'G':
		mult = 1024 * 1024 * 1024
		digits = v[:len(v)-1]
	}

	n, ok, overflow := parseDecimalStrict(digits)
	if !ok || overflow {
		return 0, invalid()
	}

	return n * mult, nil
}

func handleListen(s *model.Server, args []string, pos diag.Position, context string) error {
	if err := exactArity("listen", args, 1, pos, context); err != nil {
		return err
	}

	v := args[0]
	n, ok, overflow := parseDecimalStrict(v)
	if !ok {
		return diag.New(diag.SyntaxError, pos, fmt.Sprintf("Invalid port number: %s", v), context)
	}
	if overflow {
		return diag.New(diag.SyntaxError, pos, fmt.Sprintf("Invalid port number: %s (out of integer range)", v), context)
	}
	if n < 0 || n > 65535 {
		return diag.New(diag.SyntaxError, pos, fmt.Sprintf("Invalid port number: %s (out of valid range (0-65535))", v), context)
	}

	s.Port = int(n)
	return nil
}

func handleHost(s *model.Server, args []string, pos diag.Position, context string) error {
	if err := exactArity("host", args, 1, pos, context); err != nil {
		return err
	}
	s.Host = args[0]
	return nil
}

func handleServerName(s *model.Server, args []string, pos diag.Position, context string) error {
	if err := minArity("server_name", args, 1, pos, context); err != nil {
		return err
	}
	for _, a := range args {
		s.ServerNames = append(s.ServerNames, strings.ToLower(a))
	}
	return nil
}

func handleClientMaxBodySize(s *model.Server, args []string, pos diag.Position, context string) error {
	if err := exactArity("client_max_body_size", args, 1, pos, context); err != nil {
		return err
	}
	n, err := ParseByteSize("client_max_body_size", args[0], pos, context)
	if err != nil {
		return err
	}
	s.ClientMaxBodySize = n
	return nil
}

func handleErrorPage(s *model.Server, args []string, pos diag.Position, context string) error {
	if err := minArity("error_page", args, 2, pos, context); err != nil {
		return err
	}

	path := args[len(args)-1]
	codes := args[:len(args)-1]

	if s.ErrorPages == nil {
		s.ErrorPages = make(map[string]string)
	}

	for _, code := range codes {
		n, err := ParseInteger("error_page", code, pos, context)
		if err != nil {
			return err
		}
		s.ErrorPages[strconv.FormatInt(n, 10)] = path
	}
	return nil
}

func handleServerTokens(s *model.Server, args []string, pos diag.Position, context string) error {
	if err := exactArity("server_tokens", args, 1, pos, context); err != nil {
		return err
	}
	switch args[0] {
	case "on":
		s.ServerTokens = true
	case "off":
		s.ServerTokens = false
	default:
		return diag.New(diag.SyntaxError, pos, fmt.Sprintf("Invalid value for 'server_tokens': %s", args[0]), context)
	}
	return nil
}

func handleRoot(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := exactArity("root", args, 1, pos, context); err != nil {
		return err
	}
	l.Root = args[0]
	return nil
}

func handleAlias(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := exactArity("alias", args, 1, pos, context); err != nil {
		return err
	}
	l.Alias = args[0]
	return nil
}

func splitCommaArgs(args []string) []string {
	var out []string
	for _, a := range args {
		for _, part := range strings.Split(a, ",") {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func handleIndex(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := minArity("index", args, 1, pos, context); err != nil {
		return err
	}
	l.IndexFiles = append(l.IndexFiles, splitCommaArgs(args)...)
	return nil
}

func handleTryFiles(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := minArity("try_files", args, 1, pos, context); err != nil {
		return err
	}
	l.TryFiles = append(l.TryFiles, args...)
	return nil
}

func handleAutoindex(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := exactArity("autoindex", args, 1, pos, context); err != nil {
		return err
	}
	switch args[0] {
	case "on":
		l.Autoindex = true
	case "off":
		l.Autoindex = false
	default:
		return diag.New(diag.SyntaxError, pos, fmt.Sprintf("Invalid value for 'autoindex': %s", args[0]), context)
	}
	return nil
}

// handleMethods maintains Methods as a set: repeated methods, whether from
// one directive listing the same name twice or from the directive
// appearing more than once in a block, are stored once.
func handleMethods(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := minArity("methods", args, 1, pos, context); err != nil {
		return err
	}
	for _, a := range args {
		if !HTTPMethods[a] {
			return diag.New(diag.SyntaxError, pos, fmt.Sprintf("Invalid HTTP method: %s", a), context)
		}
		if !l.HasMethod(a) {
			l.Methods = append(l.Methods, a)
		}
	}
	return nil
}

func handleUploadStore(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := exactArity("upload_store", args, 1, pos, context); err != nil {
		return err
	}
	l.UploadStore = args[0]
	return nil
}

func handleCgiExtension(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := minArity("cgi_extension", args, 1, pos, context); err != nil {
		return err
	}
	l.CgiExtensions = append(l.CgiExtensions, splitCommaArgs(args)...)
	return nil
}

func handleReturn(l *model.Location, args []string, pos diag.Position, context string) error {
	if err := exactArity("return", args, 2, pos, context); err != nil {
		return err
	}
	n, err := ParseInteger("return", args[0], pos, context)
	if err != nil {
		return err
	}
	l.ReturnCode = int(n)
	l.Redirect = args[1]
	return nil
}
