package calc

import (
	"io"
	"strconv"
	"strings"
)

// Print renders the tree with every binary application in parentheses,
// e.g. "2+3*4" prints as "(2+(3*4))". Parsing the output of a tree built
// by Parse yields an equal tree.
func Print(e Expr) string {
	var sb strings.Builder
	_ = Fprint(&sb, e)
	return sb.String()
}

// Fprint writes the rendering of Print to w.
func Fprint(w io.Writer, e Expr) error {
	p := &printer{w: w}
	p.infix(e)
	return p.err
}

// PrintPrefix renders the tree in prefix form, e.g. "(+ 2 (* 3 4))".
func PrintPrefix(e Expr) string {
	var sb strings.Builder
	p := &printer{w: &sb}
	p.prefix(e)
	return sb.String()
}

// printer keeps the first write error and skips every write after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) infix(e Expr) {
	switch e := e.(type) {
	case *Number:
		if e == nil {
			p.write("?")
			return
		}
		p.write(strconv.FormatInt(e.Value, 10))
	case *Binary:
		if e == nil {
			p.write("?")
			return
		}
		p.write("(")
		p.infix(e.Left)
		p.write(e.Op.String())
		p.infix(e.Right)
		p.write(")")
	default:
		p.write("?")
	}
}

func (p *printer) prefix(e Expr) {
	switch e := e.(type) {
	case *Number:
		if e == nil {
			p.write("?")
			return
		}
		p.write(strconv.FormatInt(e.Value, 10))
	case *Binary:
		if e == nil {
			p.write("?")
			return
		}
		p.write("(" + e.Op.String() + " ")
		p.prefix(e.Left)
		p.write(" ")
		p.prefix(e.Right)
		p.write(")")
	default:
		p.write("?")
	}
}
