package router_test

import (
	"strings"
	"testing"

	"github.com/vhostd/vhostd/internal/config/model"
	"github.com/vhostd/vhostd/internal/router"
	"go.followtheprocess.codes/test"
)

func servers() []model.Server {
	a := model.NewServer()
	a.Port = 80
	a.ServerNames = []string{"example.com"}

	b := model.NewServer()
	b.Port = 80
	b.ServerNames = []string{"other.com"}

	c := model.NewServer()
	c.Port = 8080
	c.ServerNames = nil

	return []model.Server{a, b, c}
}

func TestSelectExactMatch(t *testing.T) {
	got, err := router.Select(servers(), 80, "other.com")
	test.Ok(t, err)
	test.Equal(t, got.ServerNames[0], "other.com")
}

func TestSelectCaseInsensitiveHost(t *testing.T) {
	got, err := router.Select(servers(), 80, "EXAMPLE.COM")
	test.Ok(t, err)
	test.Equal(t, got.ServerNames[0], "example.com")
}

func TestSelectFallsBackToFirstOnPort(t *testing.T) {
	got, err := router.Select(servers(), 80, "nowhere.com")
	test.Ok(t, err)
	test.Equal(t, got.ServerNames[0], "example.com")
}

func TestSelectNoServerOnPort(t *testing.T) {
	_, err := router.Select(servers(), 9999, "example.com")
	test.True(t, err != nil, test.Context("expected an error for an unbound port"))
	test.True(t, strings.Contains(err.Error(), "No matching server found for port 9999"), test.Context("got %q", err.Error()))
}

func TestSelectServerWithNoNames(t *testing.T) {
	got, err := router.Select(servers(), 8080, "anything.com")
	test.Ok(t, err)
	test.Equal(t, got.Port, 8080)
}
