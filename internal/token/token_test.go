package token

import "testing"

func TestIsStructuralKeywordRecognizesAllFive(t *testing.T) {
	for _, kw := range []string{"enclave", "trusted", "untrusted", "enum", "struct"} {
		if !IsStructuralKeyword(kw) {
			t.Errorf("expected %q to be a structural keyword", kw)
		}
	}
	if IsStructuralKeyword("vector") {
		t.Error("vector is a type name, not a structural keyword")
	}
}

func TestIsAttributeKeywordRecognizesAllFour(t *testing.T) {
	for _, kw := range []string{"in", "out", "size", "count"} {
		if !IsAttributeKeyword(kw) {
			t.Errorf("expected %q to be an attribute keyword", kw)
		}
	}
	if IsAttributeKeyword("trusted") {
		t.Error("trusted is a structural keyword, not an attribute keyword")
	}
}

func TestTokenIsComparesRawText(t *testing.T) {
	tok := Token{Kind: Ident, Text: "enclave"}
	if !tok.Is("enclave") || tok.Is("struct") {
		t.Fatal("Is should compare raw text exactly")
	}
}

func TestTokenStringRendersEOFSentinel(t *testing.T) {
	if EOF(1, 1).String() != "<eof>" {
		t.Fatal("EOF token should render as <eof>")
	}
	tok := Token{Kind: Ident, Text: "Ping"}
	if tok.String() != "Ping" {
		t.Fatalf("String() = %q, want Ping", tok.String())
	}
}

func TestKindStringCoversEveryDeclaredKind(t *testing.T) {
	kinds := []Kind{
		Invalid, EOFKind, Ident, UintLit, HexLit,
		LBrace, RBrace, LParen, RParen, LBracket, RBracket,
		LAngle, RAngle, Comma, Semicolon, Equal, Star,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := k.String()
		if s == "" {
			t.Fatalf("Kind %d rendered empty string", k)
		}
		seen[s] = true
	}
	if len(seen) != len(kinds) {
		t.Fatalf("expected %d distinct renderings, got %d", len(kinds), len(seen))
	}
}

func TestKindIsLiteral(t *testing.T) {
	if !UintLit.IsLiteral() || !HexLit.IsLiteral() {
		t.Fatal("numeric literal kinds should report IsLiteral")
	}
	if Ident.IsLiteral() || LBrace.IsLiteral() {
		t.Fatal("non-literal kinds should not report IsLiteral")
	}
}
