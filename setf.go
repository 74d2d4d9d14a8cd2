// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk

import (
	"github.com/creachadair/jwalk/internal/char"
)

// Setf emits a copy of the JSON document in data to out, with the
// value at the given path replaced by the rendering of format and args
// per Printf. If the path does not exist it is created: missing keys
// and intermediate objects or arrays are synthesized, and the new
// member is spliced at the end of the deepest existing container on
// the path. It reports 1 if an existing value span was replaced, 0 if
// the value was newly inserted.
//
// The path uses the walker's syntax and begins with "." for top-level
// object members: ".foo.bar" or ".a[0].b". A key containing "." or
// "[" cannot be addressed. A path addressing an existing string value
// replaces the whole quoted string; the replacement supplies its own
// quotation marks, typically with %Q.
//
// The replacement is not validated: a format that renders something
// other than one JSON value produces a malformed document.
func Setf(data []byte, out Sink, path, format string, args ...any) int {
	return Vsetf(data, out, path, format, args)
}

// Vsetf is Setf with the argument list passed as a slice.
func Vsetf(data []byte, out Sink, path, format string, args []any) int {
	return vsetf(data, out, path, &format, args)
}

// Delf emits a copy of the JSON document in data to out, with the
// value at the given path and its key removed. When the removed member
// was first in its container the following comma is consumed as well,
// so the document stays well formed. If the path does not exist the
// output equals the input.
func Delf(data []byte, out Sink, path string) int {
	return vsetf(data, out, path, nil, nil)
}

// A setfState accumulates the four offsets that drive the rewrite:
// matched is the longest byte prefix of the target path seen at any
// visited token, pos and end delimit the replacement window, and prev
// is the offset just past the token preceding the insertion point.
type setfState struct {
	data    []byte
	path    string
	matched int
	pos     int
	end     int
	prev    int
}

func (d *setfState) update(path string, tok Token) {
	if tok.Text == nil {
		return
	}
	off := tok.Span.Pos
	n := matchedPrefixLen(path, d.path)

	// A container owns the separator its members would extend the path
	// with; counting it makes insertion into an empty container land
	// inside the delimiters rather than replace the whole document.
	m := n
	switch tok.Kind {
	case ObjectEnd:
		m = matchedPrefixLen(path+".", d.path)
	case ArrayEnd:
		m = matchedPrefixLen(path+"[", d.path)
	}
	if m > d.matched {
		d.matched = m
	}

	// No exact match inside this container: the splice point is the end
	// of the deepest container sharing a prefix with the target path,
	// or just inside its opening delimiter when it is empty.
	if n < d.matched && d.pos == 0 && (tok.Kind == ObjectEnd || tok.Kind == ArrayEnd) {
		p := d.prev
		if off+1 > p {
			p = off + 1
		}
		d.pos, d.end, d.prev = p, p, p
	}

	// Exact path match: the window is the value of this token. String
	// tokens span only their inner content, so the window grows to take
	// in the quotation marks; the replacement supplies its own.
	if path == d.path {
		d.pos = off
		d.end = off + len(tok.Text)
		if tok.Kind == String {
			d.pos--
			d.end++
		}
	}

	// Track where the previous token ends while the window is open.
	// Once the window is fixed, a container opening between prev and pos
	// moves prev just inside its delimiter; that is where a new first
	// member of an empty container lands, and what deletion of a first
	// member keeps. Tokens inside the target itself do not move prev, so
	// deleting a whole container keeps only what precedes it.
	if d.pos == 0 {
		if !isDescendant(path, d.path) {
			d.prev = off + len(tok.Text)
		}
	} else if (tok.Text[0] == '[' || tok.Text[0] == '{') && off+1 <= d.pos && off+1 > d.prev {
		d.prev = off + 1
	}
}

func vsetf(data []byte, out Sink, path string, format *string, args []any) int {
	d := setfState{data: data, path: path, end: len(data)}
	Walk(data, func(name []byte, p string, tok Token) { d.update(p, tok) })

	if format == nil {
		// Deletion: keep everything up to prev and after end.
		out.Write(data[:d.prev])
		if d.prev > 0 && (data[d.prev-1] == '{' || data[d.prev-1] == '[') {
			// The removed member was first in its container; consume the
			// comma that separated it from its successor.
			i := d.end
			for i < len(data) && char.IsSpace(data[i]) {
				i++
			}
			if i < len(data) && data[i] == ',' {
				d.end = i + 1
			}
		}
		out.Write(data[d.end:])
	} else {
		out.Write(data[:d.pos])

		// Synthesize the missing portion of the path.
		off, depth := d.matched, 0
		for {
			n := spanNot(path[off:], ".[")
			if n == 0 {
				break
			}
			if depth == 0 && d.prev > 0 && data[d.prev-1] != '{' && data[d.prev-1] != '[' {
				out.Write([]byte(","))
			}
			if off > 0 && path[off-1] != '.' {
				break // an array step: the element is appended bare
			}
			Printf(out, "%.*Q:", n, path[off:])
			off += n
			if off < len(path) {
				if path[off] == '.' {
					out.Write([]byte("{"))
				} else {
					out.Write([]byte("["))
				}
				depth++
				off++
			}
		}

		Vprintf(out, *format, args)

		// Close the synthesized containers in reverse of opening order.
		for ; off > d.matched; off-- {
			if off >= len(path) {
				continue
			}
			switch path[off] {
			case '.':
				out.Write([]byte("}"))
			case '[':
				out.Write([]byte("]"))
			}
		}

		out.Write(data[d.end:])
	}
	if d.end > d.pos {
		return 1
	}
	return 0
}

// isDescendant reports whether path addresses a node strictly inside
// the node at target.
func isDescendant(path, target string) bool {
	return len(path) > len(target) && path[:len(target)] == target &&
		(path[len(target)] == '.' || path[len(target)] == '[')
}

func matchedPrefixLen(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}
