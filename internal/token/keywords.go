package token

// structuralKeywords are the words that introduce a top-level EDL
// declaration. They are lexed as plain identifiers — the grammar has no
// dedicated keyword Kind — and recognized by raw-text comparison at the
// point the parser expects one of them.
var structuralKeywords = map[string]struct{}{
	"enclave":   {},
	"trusted":   {},
	"untrusted": {},
	"enum":      {},
	"struct":    {},
}

// IsStructuralKeyword reports whether name is one of the five words that
// introduce a module-body declaration.
func IsStructuralKeyword(name string) bool {
	_, ok := structuralKeywords[name]
	return ok
}

// attributeKeywords are the legal contents of an attribute block.
var attributeKeywords = map[string]struct{}{
	"in":    {},
	"out":   {},
	"size":  {},
	"count": {},
}

// IsAttributeKeyword reports whether name names a declaration attribute.
func IsAttributeKeyword(name string) bool {
	_, ok := attributeKeywords[name]
	return ok
}
