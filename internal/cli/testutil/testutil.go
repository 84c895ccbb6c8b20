// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// UpgradesHeader is the header row used by generated fixtures. Every name
// matches a built-in column candidate exactly.
const UpgradesHeader = "Client,Current Version,Latest Version,Number of Callsites,Reachable"

// WriteCSV writes content to a file named name inside a fresh temp dir and
// returns its path.
func WriteCSV(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

// UpgradesCSV returns a fixture with n data rows. Client names are
// client_00, client_01, ...; callsite counts are written as floats ("10.0")
// and reachable counts repeat so that ties exercise the secondary keys.
func UpgradesCSV(n int) string {
	var b strings.Builder
	b.WriteString(UpgradesHeader)
	b.WriteByte('\n')
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "client_%02d,lib-1.%d,lib-2.%d,%d.0,%d\n", i, i%4, i%4, 10+i, (i*3)%20)
	}
	return b.String()
}

// SetupUpgradesCSV writes UpgradesCSV(n) to a temp file and returns its path.
func SetupUpgradesCSV(t *testing.T, n int) string {
	t.Helper()
	return WriteCSV(t, "upgrades.csv", UpgradesCSV(n))
}

// TestIO captures the standard and error output of a command.
type TestIO struct {
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// Attach points cmd's output streams at fresh buffers.
func Attach(cmd *cobra.Command) *TestIO {
	tio := &TestIO{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}
	cmd.SetOut(tio.Out)
	cmd.SetErr(tio.ErrOut)
	return tio
}

// Output returns the stdout output as a string.
func (tio *TestIO) Output() string {
	return tio.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tio *TestIO) ErrorOutput() string {
	return tio.ErrOut.String()
}

// Reset clears both output buffers.
func (tio *TestIO) Reset() {
	tio.Out.Reset()
	tio.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertMarkdownTable checks that every non-empty line before the row
// footer is a pipe table row, and that the second line is the separator.
func AssertMarkdownTable(t *testing.T, md string) {
	t.Helper()

	var rows []string
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "(") {
			continue
		}
		rows = append(rows, trimmed)
	}
	if len(rows) < 2 {
		t.Fatalf("markdown table needs a header and separator, got %q", md)
	}
	for i, row := range rows {
		if !strings.HasPrefix(row, "|") || !strings.HasSuffix(row, "|") {
			t.Errorf("line %d is not a table row: %q", i+1, row)
		}
	}
	if !strings.Contains(rows[1], "---") {
		t.Errorf("second line is not a separator: %q", rows[1])
	}
}
