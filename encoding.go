// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk

import (
	"github.com/creachadair/jwalk/internal/escape"

	"go4.org/mem"
)

// Escape writes data to out as JSON string content, escaping quotation
// marks, backslashes, and control bytes. It does not write the
// surrounding quotation marks. It returns the number of bytes written.
func Escape(out Sink, data []byte) int {
	return out.Write(escape.Quote(mem.B(data)))
}

// Unescape decodes JSON string content, such as the text of a String
// token, replacing escape sequences with their unescaped equivalents.
// The input must not include the surrounding quotation marks.
func Unescape(data []byte) ([]byte, error) {
	return escape.Unquote(mem.B(data))
}

// Quote encodes src as a JSON string value. The contents are escaped
// and double quotation marks are added.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	buf = append(buf, '"')
	return string(buf)
}

// Unquote decodes a JSON string value. Double quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, &SyntaxError{Offset: 0, err: ErrInvalid}
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
