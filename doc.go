// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jwalk is a small JSON toolkit built around a single
// streaming tokenizer. It operates on in-memory JSON text without
// constructing a document tree.
//
// # Walking
//
// Walk tokenizes its input in one pass and invokes a callback once
// per token. Each callback carries the token, the name of the
// immediate containing key, and the textual path of the token in the
// document:
//
//	jwalk.Walk(data, func(name []byte, path string, tok jwalk.Token) {
//	   log.Printf("%s = %s", path, tok.Text)
//	})
//
// A path addresses an object member k under parent p as p+"."+k and
// an array element i as p+"[i]"; the root path is empty. The same
// vocabulary is shared by every other operation in the package, so a
// path observed during a walk can be handed to Setf or compiled into
// a Scanf format. Keys containing "." or "[" produce ambiguous paths;
// the package inserts them verbatim and offers no escape syntax.
//
// The accepted grammar is lenient JSON: object keys may additionally
// be unquoted identifiers, as in {port: 8080}.
//
// # Extracting and emitting
//
// Scanf extracts typed values by path using a brace-structured format
// string, and Printf renders JSON from a format string in which bare
// identifiers become quoted keys:
//
//	var port int
//	jwalk.Scanf(data, "{server: {port: %d}}", &port)
//
//	buf := jwalk.NewBuffer(make([]byte, 256))
//	jwalk.Printf(buf, "{port: %d, tags: [%Q, %Q]}", port, "a", "b")
//
// # Editing
//
// Setf and Delf produce a modified copy of a document in which the
// value at one path is replaced, inserted, or deleted, synthesizing
// intermediate objects and arrays as needed. Prettify re-indents a
// document. All emitters write through the Sink interface, whose
// bounded-buffer variant reports would-have-been lengths so output
// can be sized with a probe pass.
package jwalk
