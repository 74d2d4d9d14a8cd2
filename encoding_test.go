// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jwalk_test

import (
	"testing"

	"github.com/creachadair/jwalk"
	"github.com/google/go-cmp/cmp"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"plain text", `"plain text"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"line\nbreak\r", `"line\nbreak\r"`},
		{"\b\f", `"\b\f"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"héllo, 世界", `"héllo, 世界"`},
	}
	for _, test := range tests {
		if got := jwalk.Quote(test.input); got != test.want {
			t.Errorf("Quote %q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"simple"`, "simple"},
		{`"a\nb"`, "a\nb"},
		{`"\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t"},
		{`"Aé"`, "Aé"},
		{`"世"`, "世"},
	}
	for _, test := range tests {
		got, err := jwalk.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote %#q: unexpected error: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote %#q: got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquote_errors(t *testing.T) {
	tests := []string{
		``, `"`, `x`, `"unterminated`, `no quotes`,
		`"bad \x escape"`, `"trunc \`, `"short \u12"`, `"bad hex \uzzzz"`,
	}
	for _, input := range tests {
		if got, err := jwalk.Unquote(input); err == nil {
			t.Errorf("Unquote %#q: got %q, want error", input, got)
		}
	}
}

func TestQuote_roundTrip(t *testing.T) {
	inputs := []string{
		"", "basic", "with \"quotes\" and \\slashes\\",
		"control \x01\x02 bytes", "newline\nand tab\t",
		"ünïcödé 文字",
	}
	for _, input := range inputs {
		got, err := jwalk.Unquote(jwalk.Quote(input))
		if err != nil {
			t.Errorf("Round trip %q failed: %v", input, err)
			continue
		}
		if diff := cmp.Diff(input, string(got)); diff != "" {
			t.Errorf("Round trip %q: (-want, +got)\n%s", input, diff)
		}
	}
}

func TestEscape(t *testing.T) {
	buf := jwalk.NewBuffer(make([]byte, 64))
	n := jwalk.Escape(buf, []byte("a\"b\nc"))
	const want = `a\"b\nc`
	if buf.String() != want {
		t.Errorf("Escape wrote %#q, want %#q", buf.String(), want)
	}
	if n != len(want) {
		t.Errorf("Escape reported %d bytes, want %d", n, len(want))
	}
}

func TestUnescape(t *testing.T) {
	got, err := jwalk.Unescape([]byte(`a\tb`))
	if err != nil {
		t.Fatalf("Unescape failed: %v", err)
	}
	if string(got) != "a\tb" {
		t.Errorf("Unescape got %q, want %q", got, "a\tb")
	}

	if _, err := jwalk.Unescape([]byte(`broken \q`)); err == nil {
		t.Error("Unescape of an invalid escape unexpectedly succeeded")
	}
}
