// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package char_test

import (
	"testing"

	"github.com/creachadair/jwalk/internal/char"
)

func TestClassifiers(t *testing.T) {
	for _, b := range []byte(" \t\r\n") {
		if !char.IsSpace(b) {
			t.Errorf("IsSpace(%q) = false, want true", b)
		}
	}
	if char.IsSpace('x') || char.IsSpace(0) {
		t.Error("IsSpace accepted a non-space byte")
	}
	for _, b := range []byte("azAZ") {
		if !char.IsAlpha(b) {
			t.Errorf("IsAlpha(%q) = false, want true", b)
		}
	}
	if char.IsAlpha('0') || char.IsAlpha('_') {
		t.Error("IsAlpha accepted a non-letter")
	}
	if !char.IsIdent('_') || !char.IsIdent('7') || char.IsIdent('-') {
		t.Error("IsIdent misclassified")
	}
	for _, b := range []byte("09afAF") {
		if !char.IsHexDigit(b) {
			t.Errorf("IsHexDigit(%q) = false, want true", b)
		}
	}
	if char.IsHexDigit('g') {
		t.Error("IsHexDigit accepted 'g'")
	}
}

func TestUTF8Len(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{'a', 1}, {0x7f, 1}, {0xc3, 2}, {0xe4, 3}, {0xf0, 4},
	}
	for _, test := range tests {
		if got := char.UTF8Len(test.b); got != test.want {
			t.Errorf("UTF8Len(%#x) = %d, want %d", test.b, got, test.want)
		}
	}
}

func TestEscapeLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{`n`, 1}, {`t`, 1}, {`"`, 1}, {`\`, 1}, {`/`, 1},
		{`u0041`, 5}, {`uAF09x`, 5},
		{``, char.EscIncomplete},
		{`u00`, char.EscIncomplete},
		{`uzzzz`, char.EscInvalid},
		{`q`, char.EscInvalid},
	}
	for _, test := range tests {
		if got := char.EscapeLen([]byte(test.input)); got != test.want {
			t.Errorf("EscapeLen(%#q) = %d, want %d", test.input, got, test.want)
		}
	}
}
