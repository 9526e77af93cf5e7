package token

import (
	"strings"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Plain, "Plain"},
		{Percent, "TagPercent"},
		{Curly, "TagCurly"},
		{Hash, "TagHash"},
		{EOF, "EOF"},
		{Invalid, "Invalid"},
		{Kind(200), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestDelimiterTables(t *testing.T) {
	for _, k := range TagKinds {
		op, cl := k.Opener(), k.Closer()
		if len(op) != 2 || len(cl) != 2 {
			t.Fatalf("%s: delimiters must be two bytes, got %q %q", k, op, cl)
		}
		if op[0] != '{' {
			t.Errorf("%s: opener %q does not start with '{'", k, op)
		}
		if cl[1] != '}' {
			t.Errorf("%s: closer %q does not end with '}'", k, cl)
		}
		// {% / %} и {# / #} делят маркерный байт; {{ / }} — нет.
		if k != Curly && op[1] != cl[0] {
			t.Errorf("%s: opener %q and closer %q disagree on the marker byte", k, op, cl)
		}
	}
	if Plain.Opener() != nil || EOF.Closer() != nil {
		t.Error("non-tag kinds must have nil delimiter tokens")
	}
}

func TestTokenStringValidUTF8(t *testing.T) {
	tok := Token{Kind: Curly, Body: []byte("user.name"), Line: 3}
	got := tok.String()
	if want := `TagCurly("user.name") @3`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTokenStringInvalidUTF8(t *testing.T) {
	tok := Token{Kind: Plain, Raw: []byte{0xff, 0xfe, 'a'}, Line: 1}
	got := tok.String()
	if !strings.Contains(got, "invalid utf-8") {
		t.Errorf("String() = %q, want an invalid utf-8 marker", got)
	}
}

func TestOutput(t *testing.T) {
	plain := Token{Kind: Plain, Raw: []byte("Hello ")}
	if got := string(plain.Output()); got != "Hello " {
		t.Errorf("plain Output() = %q", got)
	}

	tag := Token{Kind: Curly, Raw: []byte("{{ world }}"), Body: []byte("world")}
	if got := string(tag.Output()); got != "world" {
		t.Errorf("tag Output() = %q", got)
	}

	eof := Token{Kind: EOF}
	if out := eof.Output(); out != nil {
		t.Errorf("EOF Output() = %q, want nil", out)
	}
}
