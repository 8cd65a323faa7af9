package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

const bookmarksKey = "bookmarks"

// readBookmarks pulls the bookmark table out of a TOML document in document
// order:
//
//	[bookmarks]
//	proj = "/srv/proj"
//
// The array form ([[bookmarks]] with alias and path keys) is read as well.
func readBookmarks(data []byte) (Bookmarks, error) {
	var (
		p       unstable.Parser
		out     Bookmarks
		section []string
		element = -1 // index of the open [[bookmarks]] element
	)
	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			section, element = keyParts(expr.Key()), -1
		case unstable.ArrayTable:
			section, element = keyParts(expr.Key()), -1
			if isBookmarksSection(section) {
				out = append(out, Bookmark{})
				element = len(out) - 1
			}
		case unstable.KeyValue:
			key := append(append([]string(nil), section...), keyParts(expr.Key())...)
			if len(key) < 2 || key[0] != bookmarksKey {
				continue
			}
			value := expr.Value()
			if value.Kind != unstable.String {
				return nil, fmt.Errorf("bookmark %q: value must be a string", strings.Join(key[1:], "."))
			}
			if element >= 0 {
				switch key[1] {
				case "alias":
					out[element].Alias = string(value.Data)
				case "path":
					out[element].Path = string(value.Data)
				}
				continue
			}
			out = append(out, Bookmark{Alias: strings.Join(key[1:], "."), Path: string(value.Data)})
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

func isBookmarksSection(section []string) bool {
	return len(section) == 1 && section[0] == bookmarksKey
}

// appendBookmarks writes b as a [bookmarks] table after doc. Entries are
// encoded one at a time so the table keeps its order.
func appendBookmarks(doc []byte, b Bookmarks) ([]byte, error) {
	if len(b) == 0 {
		return doc, nil
	}
	var buf bytes.Buffer
	buf.Write(doc)
	if len(doc) > 0 && !bytes.HasSuffix(doc, []byte("\n")) {
		buf.WriteByte('\n')
	}
	if len(doc) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("[" + bookmarksKey + "]\n")
	for _, bm := range b {
		line, err := toml.Marshal(map[string]string{bm.Alias: bm.Path})
		if err != nil {
			return nil, fmt.Errorf("failed to encode bookmark %q: %w", bm.Alias, err)
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}
