package diag_test

import (
	"testing"

	"github.com/vhostd/vhostd/internal/config/diag"
	"go.followtheprocess.codes/test"
)

func TestDiagnosticError(t *testing.T) {
	d := diag.New(diag.SyntaxError, diag.Position{Line: 3, Column: 5}, "bad thing", "")
	test.Equal(t, d.Error(), "Line 3, column 5: bad thing")
}

func TestDiagnosticErrorWithContext(t *testing.T) {
	d := diag.New(diag.SyntaxError, diag.Position{Line: 3, Column: 5}, "bad thing", "some context")
	test.Equal(t, d.Error(), "Line 3, column 5: bad thing\n  --> some context")
}

func TestSourceLineContext(t *testing.T) {
	src := "line one\nline two\nline three"
	got := diag.SourceLineContext(src, 12) // somewhere in "line two"
	test.Equal(t, got, "line two")
}

func TestSourceLineContextFirstLine(t *testing.T) {
	src := "line one\nline two"
	got := diag.SourceLineContext(src, 2)
	test.Equal(t, got, "line one")
}

func TestSourceLineContextTrimsCarriageReturn(t *testing.T) {
	src := "line one\r\nline two"
	got := diag.SourceLineContext(src, 2)
	test.Equal(t, got, "line one")
}

func TestKindString(t *testing.T) {
	test.Equal(t, diag.TokenizerError.String(), "TokenizerError")
	test.Equal(t, diag.SyntaxError.String(), "SyntaxError")
	test.Equal(t, diag.UnexpectedToken.String(), "UnexpectedToken")
}
