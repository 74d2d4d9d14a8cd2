// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

// Prettify re-emits the JSON document in data to out with two-space
// indentation, one level per container, keys as "name": value, and
// commas between siblings. It returns the number of input bytes
// consumed; in case of error, output already written stays written,
// and the error has concrete type *SyntaxError.
func Prettify(data []byte, out Sink) (int, error) {
	p := prettifier{out: out}
	return Walk(data, p.update)
}

// PrettifyFile reads the named file in full and rewrites it with the
// Prettify layout and a trailing newline. If the content does not
// parse, the file is left unmodified.
func PrettifyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}
	var buf bytes.Buffer
	if _, err := Prettify(data, NewWriter(&buf)); err != nil {
		return errors.Wrapf(err, "prettify %s", path)
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(path, buf.Bytes(), info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "rewrite %s", path)
	}
	return nil
}

// A prettifier tracks indentation depth and the previous token kind,
// which decides comma and newline placement.
type prettifier struct {
	out   Sink
	level int
	last  Kind
}

func (p *prettifier) put(s string) { p.out.Write([]byte(s)) }

func (p *prettifier) indent() {
	for i := 0; i < p.level; i++ {
		p.put("  ")
	}
}

// printKey emits the separators and key prefix for a value at path.
// Array elements and the root value get no key.
func (p *prettifier) printKey(name []byte, path string) {
	if p.last != Invalid && p.last != ArrayStart && p.last != ObjectStart {
		p.put(",")
	}
	if path != "" {
		p.put("\n")
	}
	p.indent()
	if path != "" && path[len(path)-1] != ']' {
		p.put("\"")
		p.out.Write(name)
		p.put("\": ")
	}
}

func (p *prettifier) update(name []byte, path string, tok Token) {
	switch tok.Kind {
	case ObjectStart, ArrayStart:
		p.printKey(name, path)
		if tok.Kind == ArrayStart {
			p.put("[")
		} else {
			p.put("{")
		}
		p.level++
	case ObjectEnd, ArrayEnd:
		p.level--
		if p.last != Invalid && p.last != ArrayStart && p.last != ObjectStart {
			p.put("\n")
			p.indent()
		}
		if tok.Kind == ArrayEnd {
			p.put("]")
		} else {
			p.put("}")
		}
	case String:
		p.printKey(name, path)
		p.put("\"")
		p.out.Write(tok.Text)
		p.put("\"")
	case Number, True, False, Null:
		p.printKey(name, path)
		p.out.Write(tok.Text)
	}
	p.last = tok.Kind
}
