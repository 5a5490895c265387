// Package model defines the typed configuration entities produced by the
// parser: Config, Server and Location.
package model

// DefaultPort is the port a Server listens on when no listen directive is
// given.
const DefaultPort = 80

// DefaultHost is the host a Server binds to when no host directive is given.
const DefaultHost = "0.0.0.0"

// DefaultClientMaxBodySize is the request body cap applied when no
// client_max_body_size directive is given: 1 MiB.
const DefaultClientMaxBodySize = 1 << 20

// Config owns an ordered sequence of Server blocks. Insertion order is
// preserved; routing depends on it.
type Config struct {
	Servers []Server `json:"servers" yaml:"servers" toml:"servers"`
}

// Server is one server block.
//
// ErrorPages is keyed by the decimal status code text ("404"), not by an
// int, so that it round-trips through TOML: BurntSushi/toml's map encoder
// requires string keys, and every exporter can share the one representation.
type Server struct {
	Host              string            `json:"host" yaml:"host" toml:"host"`
	ErrorPages        map[string]string `json:"error_pages" yaml:"error_pages" toml:"error_pages"`
	ServerNames       []string          `json:"server_names" yaml:"server_names" toml:"server_names"`
	Locations         []Location        `json:"locations" yaml:"locations" toml:"locations"`
	Port              int               `json:"port" yaml:"port" toml:"port"`
	ClientMaxBodySize int64             `json:"client_max_body_size" yaml:"client_max_body_size" toml:"client_max_body_size"`
	ServerTokens      bool              `json:"server_tokens" yaml:"server_tokens" toml:"server_tokens"`
}

// NewServer returns a Server with all documented defaults applied.
func NewServer() Server {
	return Server{
		Port:              DefaultPort,
		Host:              DefaultHost,
		ClientMaxBodySize: DefaultClientMaxBodySize,
		ServerTokens:      true,
		ErrorPages:        make(map[string]string),
	}
}

// Location is one location block nested inside a Server.
type Location struct {
	Path          string   `json:"path" yaml:"path" toml:"path"`
	Root          string   `json:"root" yaml:"root" toml:"root"`
	Alias         string   `json:"alias" yaml:"alias" toml:"alias"`
	Redirect      string   `json:"redirect" yaml:"redirect" toml:"redirect"`
	UploadStore   string   `json:"upload_store" yaml:"upload_store" toml:"upload_store"`
	IndexFiles    []string `json:"index_files" yaml:"index_files" toml:"index_files"`
	TryFiles      []string `json:"try_files" yaml:"try_files" toml:"try_files"`
	CgiExtensions []string `json:"cgi_extensions" yaml:"cgi_extensions" toml:"cgi_extensions"`
	Methods       []string `json:"methods" yaml:"methods" toml:"methods"`
	ReturnCode    int      `json:"return_code" yaml:"return_code" toml:"return_code"`
	Autoindex     bool     `json:"autoindex" yaml:"autoindex" toml:"autoindex"`
}

// NewLocation returns a Location for the given path with all documented
// defaults applied.
func NewLocation(path string) Location {
	return Location{Path: path}
}

// HasMethod reports whether method (already upper-cased) is in the
// location's accumulated method set.
func (l Location) HasMethod(method string) bool {
	for _, m := range l.Methods {
		if m == method {
			return true
		}
	}
	return false
}
