// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/creachadair/jwalk/internal/char"
	"github.com/pkg/errors"
)

// A PrinterFunc is a %M placeholder handler for Printf. It receives
// the output sink and the arguments remaining after the placeholder,
// and reports the number of bytes it wrote and the number of arguments
// it consumed.
type PrinterFunc func(out Sink, args []any) (n, consumed int)

// Printf renders format and args to out and returns the number of
// bytes written, as counted by the sink.
//
// The format is a mix of three lexeme classes. The punctuation bytes
//
//	: , space \r \n \t [ ] { } "
//
// are copied verbatim. A bareword of the form [_A-Za-z][_A-Za-z0-9]*
// is emitted surrounded by double quotation marks, a shorthand for
// object keys. A placeholder begins with % and consumes arguments:
//
//	%M    PrinterFunc; invoked with the remaining arguments
//	%B    bool; emits true or false, unquoted
//	%H    []byte; emits the bytes as a quoted lowercase hex string
//	%V    []byte; emits the bytes as a quoted base64 string
//	%Q    string, []byte, *string, or nil; emits a quoted escaped
//	      string, or null for nil
//	%.*Q  int then string or []byte; as %Q limited to a length prefix
//	%n    *int; receives the running output byte count
//
// Any other conversion specification (flags, width, precision
// including *, length modifiers hh/h/l/ll/q/z/j/t/I/I32/I64, then the
// specifier) consumes one argument per * plus the converted value, and
// is rendered through the fmt package after the length modifiers are
// dropped and the u and i verbs are normalized to d.
//
// An argument whose type does not match its placeholder is a
// programming error: Printf panics.
func Printf(out Sink, format string, args ...any) int {
	return Vprintf(out, format, args)
}

// Vprintf is Printf with the argument list passed as a slice, the form
// used by PrinterFunc handlers that re-enter the emitter.
func Vprintf(out Sink, format string, args []any) int {
	p := printer{out: out, args: args}
	p.render(format)
	return p.n
}

// Fprintf renders format and args to the named file, appends a
// newline, and closes it. The file is created or truncated. It returns
// the number of content bytes written.
func Fprintf(path, format string, args ...any) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return -1, errors.Wrapf(err, "create %s", path)
	}
	out := NewWriter(f)
	n := Vprintf(out, format, args)
	out.Write([]byte("\n"))
	if err := out.Err(); err != nil {
		f.Close()
		return -1, errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return -1, errors.Wrapf(err, "close %s", path)
	}
	return n, nil
}

// PrintfArray is a PrinterFunc that renders a slice or array as a JSON
// array. It consumes two arguments: the slice and a Printf format for
// one element. Elements are separated by a comma and a space.
//
//	jwalk.Printf(out, "{values: %M}", jwalk.PrintfArray, []int{1, 2}, "%d")
func PrintfArray(out Sink, args []any) (n, consumed int) {
	if len(args) < 2 {
		panic("jwalk: PrintfArray requires a slice and an element format")
	}
	elemFmt, ok := args[1].(string)
	if !ok {
		panic("jwalk: PrintfArray element format must be a string")
	}
	n = out.Write([]byte("["))
	if args[0] != nil {
		rv := reflect.ValueOf(args[0])
		if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
			panic("jwalk: PrintfArray requires a slice or array")
		}
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				n += out.Write([]byte(", "))
			}
			n += Vprintf(out, elemFmt, []any{rv.Index(i).Interface()})
		}
	}
	n += out.Write([]byte("]"))
	return n, 2
}

// A printer carries the state of one Vprintf call: the sink, the
// argument cursor, and the running byte count.
type printer struct {
	out  Sink
	args []any
	ai   int
	n    int
}

func (p *printer) put(s string)    { p.n += p.out.Write([]byte(s)) }
func (p *printer) putByte(b byte)  { p.n += p.out.Write([]byte{b}) }
func (p *printer) quoted(b []byte) { p.putByte('"'); p.n += Escape(p.out, b); p.putByte('"') }

func (p *printer) arg() any {
	if p.ai >= len(p.args) {
		panic("jwalk: not enough arguments for format")
	}
	v := p.args[p.ai]
	p.ai++
	return v
}

func (p *printer) render(format string) {
	i := 0
	for i < len(format) {
		c := format[i]
		switch {
		case strings.IndexByte(":, \r\n\t[]{}\"", c) >= 0:
			p.putByte(c)
			i++
		case c == '%':
			i += p.placeholder(format[i:])
		case c == '_' || char.IsAlpha(c):
			j := i
			for j < len(format) && char.IsIdent(format[j]) {
				j++
			}
			p.putByte('"')
			p.put(format[i:j])
			p.putByte('"')
			i = j
		default:
			p.putByte(c)
			i++
		}
	}
}

// placeholder handles one %-placeholder at the front of format and
// returns the number of format bytes consumed.
func (p *printer) placeholder(format string) int {
	if len(format) < 2 {
		panic("jwalk: incomplete placeholder")
	}
	switch format[1] {
	case 'M':
		var f PrinterFunc
		switch t := p.arg().(type) {
		case PrinterFunc:
			f = t
		case func(Sink, []any) (int, int):
			f = t
		default:
			panic("jwalk: %M requires a PrinterFunc")
		}
		n, consumed := f(p.out, p.args[p.ai:])
		p.n += n
		p.ai += consumed
		return 2
	case 'B':
		v, ok := p.arg().(bool)
		if !ok {
			panic("jwalk: %B requires a bool")
		}
		if v {
			p.put("true")
		} else {
			p.put("false")
		}
		return 2
	case 'H':
		b, ok := p.arg().([]byte)
		if !ok {
			panic("jwalk: %H requires a []byte")
		}
		p.putByte('"')
		p.put(hex.EncodeToString(b))
		p.putByte('"')
		return 2
	case 'V':
		b, ok := p.arg().([]byte)
		if !ok {
			panic("jwalk: %V requires a []byte")
		}
		p.putByte('"')
		p.put(base64.StdEncoding.EncodeToString(b))
		p.putByte('"')
		return 2
	case 'Q':
		p.quotedArg(p.arg(), -1)
		return 2
	}
	if strings.HasPrefix(format, "%.*Q") {
		l, ok := p.arg().(int)
		if !ok {
			panic("jwalk: %.*Q requires an int length")
		}
		p.quotedArg(p.arg(), l)
		return 4
	}
	return p.hostSpec(format)
}

// quotedArg emits v as a quoted JSON string, or null. A non-negative
// limit caps the number of input bytes used.
func (p *printer) quotedArg(v any, limit int) {
	clip := func(b []byte) []byte {
		if limit >= 0 && limit < len(b) {
			return b[:limit]
		}
		return b
	}
	switch t := v.(type) {
	case nil:
		p.put("null")
	case string:
		p.quoted(clip([]byte(t)))
	case []byte:
		p.quoted(clip(t))
	case *string:
		if t == nil {
			p.put("null")
		} else {
			p.quoted(clip([]byte(*t)))
		}
	default:
		panic("jwalk: %Q requires a string, []byte, *string, or nil")
	}
}

// hostSpec parses a full conversion specification at the front of
// format, consumes its arguments, and delegates rendering to the fmt
// package. It returns the number of format bytes consumed.
func (p *printer) hostSpec(format string) int {
	j := 1 // skip '%'

	var flags strings.Builder
	for j < len(format) && strings.IndexByte("-+ #0", format[j]) >= 0 {
		flags.WriteByte(format[j])
		j++
	}

	width, hasWidth := 0, false
	if j < len(format) && format[j] == '*' {
		width, hasWidth = p.intArg("width"), true
		j++
	} else {
		for j < len(format) && char.IsDigit(format[j]) {
			width, hasWidth = width*10+int(format[j]-'0'), true
			j++
		}
	}

	prec, hasPrec := 0, false
	if j < len(format) && format[j] == '.' {
		hasPrec = true
		j++
		if j < len(format) && format[j] == '*' {
			prec = p.intArg("precision")
			j++
		} else {
			for j < len(format) && char.IsDigit(format[j]) {
				prec = prec*10 + int(format[j]-'0')
				j++
			}
		}
	}

	// Length modifiers carry no information in Go; drop them.
	for j < len(format) {
		if strings.HasPrefix(format[j:], "I64") || strings.HasPrefix(format[j:], "I32") {
			j += 3
		} else if strings.IndexByte("hlLqzjtI", format[j]) >= 0 {
			j++
		} else {
			break
		}
	}

	if j >= len(format) {
		panic("jwalk: conversion lacks a specifier")
	}
	verb := format[j]
	j++

	if verb == '%' {
		p.putByte('%')
		return j
	}
	if verb == 'n' {
		t, ok := p.arg().(*int)
		if !ok {
			panic("jwalk: %n requires an *int")
		}
		*t = p.n
		return j
	}

	var val any
	switch verb {
	case 'd', 'i', 'u', 'x', 'X', 'o', 'c':
		val = p.arg()
		if !isIntArg(val) {
			panic(fmt.Sprintf("jwalk: %%%c requires an integer", verb))
		}
		if verb == 'i' || verb == 'u' {
			verb = 'd'
		}
	case 'e', 'E', 'f', 'F', 'g', 'G':
		switch t := p.arg().(type) {
		case float64:
			val = t
		case float32:
			val = t
		default:
			panic(fmt.Sprintf("jwalk: %%%c requires a float", verb))
		}
		if verb == 'F' {
			verb = 'f'
		}
	case 's', 'v', 'p':
		val = p.arg()
	default:
		panic(fmt.Sprintf("jwalk: unsupported conversion %%%c", verb))
	}

	var goFmt strings.Builder
	goFmt.WriteByte('%')
	goFmt.WriteString(flags.String())
	if hasWidth {
		if width < 0 {
			goFmt.WriteByte('-')
			width = -width
		}
		goFmt.WriteString(strconv.Itoa(width))
	}
	if hasPrec {
		goFmt.WriteByte('.')
		goFmt.WriteString(strconv.Itoa(prec))
	}
	goFmt.WriteByte(verb)
	p.put(fmt.Sprintf(goFmt.String(), val))
	return j
}

func (p *printer) intArg(label string) int {
	v, ok := p.arg().(int)
	if !ok {
		panic("jwalk: * " + label + " requires an int")
	}
	return v
}

func isIntArg(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	}
	return false
}
