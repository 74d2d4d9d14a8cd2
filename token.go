// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk

// Kind is the type of a token reported by the walker.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid     Kind = iota // invalid token
	String                  // quoted string or unquoted identifier key
	Number                  // number literal
	True                    // constant: true
	False                   // constant: false
	Null                    // constant: null
	ObjectStart             // object open brace "{"
	ObjectEnd               // object close brace "}"
	ArrayStart              // array open bracket "["
	ArrayEnd                // array close bracket "]"
)

var kindStr = [...]string{
	Invalid:     "invalid token",
	String:      "string",
	Number:      "number",
	True:        "true",
	False:       "false",
	Null:        "null",
	ObjectStart: "object start",
	ObjectEnd:   "object end",
	ArrayStart:  "array start",
	ArrayEnd:    "array end",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsValue reports whether k is one of the five scalar value kinds.
func (k Kind) IsValue() bool { return k >= String && k <= Null }

// A Span describes a contiguous range of bytes in a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len returns the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// A Token is one element of the walker's output stream: a view of the
// source text plus a type tag.
//
// For the five scalar kinds, Text spans the raw source bytes of the
// value. String tokens span the content between the quotation marks,
// excluding the marks themselves; number tokens include any sign and
// exponent. For ObjectStart and ArrayStart, Text is nil and Span is
// zero. For ObjectEnd and ArrayEnd, Text spans the full container
// including its delimiters.
//
// Text aliases the input given to the walker; it is valid only as long
// as that input is.
type Token struct {
	Kind Kind
	Text []byte // raw source bytes, nil for container-start tokens
	Span Span   // byte offsets of Text in the walker's input
}
