// Package testutil provides testing utilities for samisa tests.
package testutil

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akhildatla/samisa/pkg/asm"
	"github.com/akhildatla/samisa/pkg/isa"
)

// TempFile creates a temporary file with the given content and extension.
// The file is automatically cleaned up when the test finishes.
func TempFile(t *testing.T, content []byte, ext string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+ext)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// MustDecodeHex decodes a hex dump, ignoring spaces.
func MustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// MustAssemble assembles source text, failing the test on error.
func MustAssemble(t *testing.T, source string) []isa.ExtendedInstruction {
	t.Helper()
	instructions, err := asm.Assemble(source)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	return instructions
}

// GreetingProgram returns standard assembly test content.
func GreetingProgram() string {
	return `; standard greeting fixture
GREET USER PRESET=FRIENDLY
CALCULATE NUMBER CALC ADD 15 7
RESPOND TIME TIME 1735300000 3 HOUR 0
HALT
`
}
