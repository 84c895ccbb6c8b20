package latex

import (
	"bytes"
	"strings"
)

// printer accumulates LaTeX source line by line.
type printer struct {
	output *bytes.Buffer
}

func newPrinter() *printer {
	return &printer{output: &bytes.Buffer{}}
}

// String returns the document with exactly one trailing newline.
func (p *printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *printer) line(parts ...string) {
	for _, s := range parts {
		p.output.WriteString(s)
	}
	p.output.WriteByte('\n')
}

// begin opens an environment with optional trailing arguments, e.g.
// begin("tabular", "{ll}") -> \begin{tabular}{ll}.
func (p *printer) begin(env string, args ...string) {
	p.line(append([]string{`\begin{`, env, `}`}, args...)...)
}

func (p *printer) end(env string) {
	p.line(`\end{`, env, `}`)
}

// command writes \name{arg}.
func (p *printer) command(name, arg string) {
	p.line(`\`, name, `{`, arg, `}`)
}

// tableRow writes cells joined by & and terminated by \\.
func (p *printer) tableRow(cells ...string) {
	p.line(strings.Join(cells, " & "), ` \\`)
}
