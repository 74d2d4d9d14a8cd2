// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk

import (
	"strconv"
	"strings"
)

// NextKey returns the first member of the object at the given path
// whose value begins after the cursor handle, along with its key
// token and a new handle addressing it. Pass handle -1 to begin, and
// the returned handle to continue; ok is false when no members
// remain:
//
//	for h, key, val, ok := jwalk.NextKey(data, -1, ""); ok; h, key, val, ok = jwalk.NextKey(data, h, "") {
//		// ...
//	}
//
// Each call walks the whole document, so iterating N members costs
// O(N) walks; the value of this interface is simplicity, not speed.
func NextKey(data []byte, handle int, path string) (next int, key, val Token, ok bool) {
	d := nextState{handle: handle, path: path, key: &key, val: &val}
	Walk(data, d.update)
	return d.handle, key, val, d.found
}

// NextElem returns the first element of the array at the given path
// whose value begins after the cursor handle, along with its index
// and a new handle addressing it. Pass handle -1 to begin; ok is
// false when no elements remain. Its cost is that of NextKey.
func NextElem(data []byte, handle int, path string) (next int, idx int, val Token, ok bool) {
	idx = -1
	d := nextState{handle: handle, path: path, idx: &idx, val: &val}
	Walk(data, d.update)
	return d.handle, idx, val, d.found
}

type nextState struct {
	handle int
	path   string
	found  bool
	key    *Token
	val    *Token
	idx    *int
}

func (d *nextState) update(name []byte, path string, tok Token) {
	if d.found || len(path) <= len(d.path) || !strings.HasPrefix(path, d.path) {
		return
	}
	rel := path[len(d.path):]
	if strings.ContainsAny(rel[1:], ".[") {
		return // a deeper descendant, not a direct child
	}
	if tok.Kind == ObjectStart || tok.Kind == ArrayStart {
		// Start tokens carry the child's name but no span; hold the name
		// until the matching end token supplies the value.
		d.setKey(name, rel[0] == '[')
	} else if d.handle < 0 || d.handle < tok.Span.Pos {
		if tok.Kind != ObjectEnd && tok.Kind != ArrayEnd {
			d.setKey(name, rel[0] == '[')
		}
		*d.val = tok
		d.handle = tok.Span.Pos
		d.found = true
	}
}

func (d *nextState) setKey(name []byte, isElem bool) {
	if isElem {
		if d.key != nil {
			*d.key = Token{}
		}
		if d.idx != nil {
			*d.idx, _ = strconv.Atoi(string(name))
		}
	} else {
		if d.key != nil {
			*d.key = Token{Kind: String, Text: name}
		}
		if d.idx != nil {
			*d.idx = -1
		}
	}
}
