// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jwalk/internal/char"
)

// A ScannerFunc is a %M converter handler for Scanf. It receives the
// raw token bytes at the matched path and the user-data argument that
// followed the function in the argument list.
type ScannerFunc func(data []byte, userdata any)

// Scanf extracts typed values from the JSON document in data according
// to format, and returns the number of successful conversions.
//
// The format interleaves { } with identifier keys, %-placeholders, and
// the separators : , and whitespace. A { appends a path segment
// separator, } pops the last segment, and a key replaces the last
// segment, so sibling keys read naturally:
//
//	n := jwalk.Scanf(data, "{a: %d, b: %Q}", &i, &s)
//
// Each placeholder drives one walk of the document looking for an
// exact path match. Converter targets:
//
//	%B  *bool
//	%Q  *string, **string, or *[]byte; a JSON null stores nil through
//	    a **string or *[]byte target and "" through a *string target,
//	    and is not counted as a conversion
//	%T  *Token; receives the token descriptor verbatim
//	%M  ScannerFunc followed by one user-data argument
//	%H  *int then *[]byte; hex-decodes the string value
//	%V  *[]byte then *int; base64-decodes the string value
//
// Any other conversion specification is captured through the next
// delimiter and delegated to fmt.Sscanf against the token text, after
// length modifiers are dropped and the u and i verbs are normalized to
// d; token text of 32 bytes or more is not converted. A target whose
// type does not match its placeholder is a programming error: Scanf
// panics.
//
// After a delegated conversion the delimiter set includes ] and },
// which are skipped without popping the path cursor; formats that
// close a nested object with a numeric conversion against the brace
// and then continue with sibling keys do not rewind as one might
// expect. Group every key with its own braces instead.
func Scanf(data []byte, format string, args ...any) int {
	return Vscanf(data, format, args)
}

// Vscanf is Scanf with the argument list passed as a slice.
func Vscanf(data []byte, format string, args []any) int {
	s := scanner{data: data, args: args}
	s.scan(format)
	return s.conversions
}

// ScanArrayElem returns the token for element idx of the array at the
// given path, or ok false if no such element exists.
func ScanArrayElem(data []byte, path string, idx int) (tok Token, ok bool) {
	want := path + "[" + strconv.Itoa(idx) + "]"
	Walk(data, func(name []byte, p string, t Token) {
		if p == want {
			tok, ok = t, true
		}
	})
	return
}

// A scanner carries the state of one Vscanf call: the path cursor, the
// argument cursor, and the conversion count.
type scanner struct {
	data        []byte
	args        []any
	ai          int
	path        []byte
	conversions int
}

func (s *scanner) arg() any {
	if s.ai >= len(s.args) {
		panic("jwalk: not enough arguments for format")
	}
	v := s.args[s.ai]
	s.ai++
	return v
}

func (s *scanner) scan(format string) {
	i := 0
	for i < len(format) {
		switch c := format[i]; {
		case c == '{':
			s.path = append(s.path, '.')
			i++
		case c == '}':
			if j := bytes.LastIndexByte(s.path, '.'); j >= 0 {
				s.path = s.path[:j]
			}
			i++
		case c == '%':
			i += s.placeholder(format[i:])
		case char.IsAlpha(c) || c >= 0x80:
			// A key overwrites everything after the last separator, so a
			// run of sibling keys shares one cursor segment.
			keyLen := spanNot(format[i:], ": \r\n\t")
			if j := bytes.LastIndexByte(s.path, '.'); j >= 0 {
				s.path = s.path[:j+1]
			}
			s.path = append(s.path, format[i:i+keyLen]...)
			i += keyLen
			i += span(format[i:], ": \r\n\t")
		default:
			i++
		}
	}
}

// placeholder consumes one %-placeholder at the front of format, runs
// a walk for it, and returns the number of format bytes consumed.
func (s *scanner) placeholder(format string) int {
	kind := byte(0)
	if len(format) > 1 {
		kind = format[1]
	}

	target := s.arg()
	var aux any
	var convSpec string
	used := 2
	switch kind {
	case 'M', 'V', 'H':
		aux = s.arg()
	case 'B', 'Q', 'T':
	default:
		const delims = ", \t\r\n]}"
		n := spanNot(format[1:], delims)
		convSpec = format[:1+n]
		used = 1 + n
		used += span(format[used:], delims)
	}

	want := string(s.path)
	Walk(s.data, func(name []byte, p string, tok Token) {
		if p != want || tok.Text == nil {
			return
		}
		s.convert(kind, convSpec, target, aux, tok)
	})
	return used
}

func (s *scanner) convert(kind byte, convSpec string, target, aux any, tok Token) {
	switch kind {
	case 'B':
		t, ok := target.(*bool)
		if !ok {
			panic("jwalk: %B requires a *bool")
		}
		*t = tok.Kind == True
		s.conversions++

	case 'Q':
		s.convertString(target, tok)

	case 'T':
		t, ok := target.(*Token)
		if !ok {
			panic("jwalk: %T requires a *Token")
		}
		*t = tok
		s.conversions++

	case 'M':
		var f ScannerFunc
		switch t := target.(type) {
		case ScannerFunc:
			f = t
		case func([]byte, any):
			f = t
		default:
			panic("jwalk: %M requires a ScannerFunc")
		}
		f(tok.Text, aux)
		s.conversions++

	case 'H':
		lenp, ok := target.(*int)
		if !ok {
			panic("jwalk: %H requires an *int length target")
		}
		bytesp, ok := aux.(*[]byte)
		if !ok {
			panic("jwalk: %H requires a *[]byte output")
		}
		dec, err := hex.DecodeString(string(tok.Text))
		if err != nil {
			return
		}
		*bytesp = dec
		*lenp = len(dec)
		s.conversions++

	case 'V':
		bytesp, ok := target.(*[]byte)
		if !ok {
			panic("jwalk: %V requires a *[]byte output")
		}
		lenp, ok := aux.(*int)
		if !ok {
			panic("jwalk: %V requires an *int length")
		}
		dec, err := base64.StdEncoding.DecodeString(string(tok.Text))
		if err != nil {
			return
		}
		*bytesp = dec
		*lenp = len(dec)
		s.conversions++

	default:
		// Delegated conversion: the token text is bounded so a copy can
		// sit in a small scratch string, as with the C original.
		if len(tok.Text) >= 32 {
			return
		}
		n, _ := fmt.Sscanf(string(tok.Text), normalizeScanSpec(convSpec), target)
		s.conversions += n
	}
}

func (s *scanner) convertString(target any, tok Token) {
	isNull := tok.Kind == Null
	var dec []byte
	if !isNull {
		var err error
		dec, err = Unescape(tok.Text)
		if err != nil {
			return
		}
	}
	switch t := target.(type) {
	case *string:
		if isNull {
			*t = ""
			return
		}
		*t = string(dec)
	case **string:
		if isNull {
			*t = nil
			return
		}
		v := string(dec)
		*t = &v
	case *[]byte:
		if isNull {
			*t = nil
			return
		}
		*t = dec
	default:
		panic("jwalk: %Q requires a *string, **string, or *[]byte")
	}
	s.conversions++
}

// spanNot returns the length of the prefix of s containing no byte
// from chars.
func spanNot(s, chars string) int {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) >= 0 {
			return i
		}
	}
	return len(s)
}

// span returns the length of the prefix of s containing only bytes
// from chars.
func span(s, chars string) int {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) < 0 {
			return i
		}
	}
	return len(s)
}

// normalizeScanSpec rewrites a C-style conversion specification into
// one fmt.Sscanf accepts: length modifiers are dropped and the u and i
// verbs become d.
func normalizeScanSpec(spec string) string {
	var out strings.Builder
	i := 0
	for i < len(spec) {
		switch {
		case strings.HasPrefix(spec[i:], "I64") || strings.HasPrefix(spec[i:], "I32"):
			i += 3
		case strings.IndexByte("hlLqzjtI", spec[i]) >= 0 && i > 0:
			i++
		case spec[i] == 'u' || spec[i] == 'i':
			out.WriteByte('d')
			i++
		default:
			out.WriteByte(spec[i])
			i++
		}
	}
	return out.String()
}
