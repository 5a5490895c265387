package cmd_test

import (
	"testing"

	"github.com/vhostd/vhostd/internal/cmd"
	"go.followtheprocess.codes/test"
)

func TestSmoke(t *testing.T) {
	_, err := cmd.Build()
	test.Ok(t, err)
}
