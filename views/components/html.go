package components

import (
	"io"
	"strings"

	"github.com/a-h/templ"
)

// tag writes an opening tag with escaped attributes given as name/value pairs.
// Empty values are dropped, except for alt which is meaningful when empty.
func tag(w io.Writer, name string, attrs ...string) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" && attrs[i] != "alt" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attrs[i])
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attrs[i+1]))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	_, err := io.WriteString(w, b.String())
	return err
}

func closeTag(w io.Writer, name string) error {
	_, err := io.WriteString(w, "</"+name+">")
	return err
}

// textElement writes <name attrs...>text</name> with the text escaped.
func textElement(w io.Writer, name, text string, attrs ...string) error {
	if err := tag(w, name, attrs...); err != nil {
		return err
	}
	if _, err := io.WriteString(w, templ.EscapeString(text)); err != nil {
		return err
	}
	return closeTag(w, name)
}
