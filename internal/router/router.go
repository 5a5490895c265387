// Package router implements the request-router collaborator described by
// the configuration front-end: selecting a virtual host for an incoming
// (port, Host header) pair. It is a pure function over a parsed
// configuration and holds no state of its own.
package router

import (
	"fmt"
	"strings"

	"github.com/vhostd/vhostd/internal/config/model"
)

// Select returns the server that should handle a request arriving on port
// for the given host header. It prefers a server on port whose
// ServerNames contains host (case-insensitively), falling back to the
// first server bound to port. If no server listens on port at all, Select
// fails with an error naming the port.
func Select(servers []model.Server, port int, host string) (*model.Server, error) {
	var firstOnPort *model.Server

	for i := range servers {
		s := &servers[i]
		if s.Port != port {
			continue
		}
		if firstOnPort == nil {
			firstOnPort = s
		}
		if matchesHost(s, host) {
			return s, nil
		}
	}

	if firstOnPort != nil {
		return firstOnPort, nil
	}

	return nil, fmt.Errorf("No matching server found for port %d", port)
}

func matchesHost(s *model.Server, host string) bool {
	for _, name := range s.ServerNames {
		if strings.EqualFold(name, host) {
			return true
		}
	}
	return false
}
