package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/grievdesk/internal/ident"
)

const (
	byteOrderMark = "\uFEFF"
	maxLineSize   = 1 << 20
)

// Parse reads a catalog document from r.
//
// Parse never discards what it has already read: on a read error it returns
// the catalog accumulated so far together with the error.
func Parse(r io.Reader) (*Catalog, error) {
	c := Empty()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	section := ""
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, byteOrderMark)
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isHeader(line) {
			section = line
			continue
		}

		switch section {
		case "":
			// content before the first header
		case SectionUsers:
			c.addUser(line)
		default:
			l := c.list(section)
			*l = append(*l, line)
		}
	}

	if err := sc.Err(); err != nil {
		return c, fmt.Errorf("read catalog: %w", err)
	}
	return c, nil
}

// addUser accepts "identifier,Display Name". Only the first comma separates,
// so display names may contain commas. Lines without a comma, with an
// identifier that normalizes to nothing, or with an empty name are dropped.
// A repeated identifier keeps the last name.
func (c *Catalog) addUser(line string) {
	rawKey, name, ok := strings.Cut(line, ",")
	if !ok {
		return
	}
	key := ident.Normalize(rawKey)
	name = strings.TrimSpace(name)
	if key == "" || name == "" {
		return
	}
	c.users[key] = name
}
