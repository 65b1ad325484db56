package parser

import (
	"testing"

	"edlgen/internal/diag"
	"edlgen/internal/ir"
)

func mustParse(t *testing.T, src string) *ir.Edl {
	t.Helper()
	edl, err := ParseSource("test.edl", "test", []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return edl
}

func parseErr(t *testing.T, src string) *diag.Error {
	t.Helper()
	_, err := ParseSource("test.edl", "test", []byte(src))
	if err == nil {
		t.Fatalf("expected an error, got none")
	}
	de, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("expected *diag.Error, got %T (%v)", err, err)
	}
	return de
}

func TestMinimalTrustedFunction(t *testing.T) {
	edl := mustParse(t, `enclave { trusted { uint32_t Ping(uint32_t x); }; };`)

	if len(edl.TrustedList) != 1 {
		t.Fatalf("trusted list len = %d, want 1", len(edl.TrustedList))
	}
	fn := edl.TrustedList[0]
	if fn.Name != "Ping" || fn.AbiName != "Ping_0" {
		t.Fatalf("got name=%q abi=%q", fn.Name, fn.AbiName)
	}
	if fn.ReturnInfo.TypeInfo.Kind != ir.UInt32 || fn.ReturnInfo.TypeInfo.IsPointer {
		t.Fatalf("unexpected return info: %+v", fn.ReturnInfo)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0].Name != "x" || !fn.Parameters[0].Attributes.In {
		t.Fatalf("unexpected parameters: %+v", fn.Parameters)
	}
}

func TestPointerWithSize(t *testing.T) {
	edl := mustParse(t, `enclave { trusted { void Write([in, size=len] uint8_t* buf, size_t len); }; };`)
	fn := edl.TrustedList[0]
	buf := fn.Parameters[0]
	if !buf.Attributes.In || buf.Attributes.SizeInfo == nil || buf.Attributes.SizeInfo.Text != "len" {
		t.Fatalf("unexpected buf attrs: %+v", buf.Attributes)
	}
}

func TestPointerWithMissingSizeSibling(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void Write([in, size=len] uint8_t* buf); }; };`)
	if de.ID != diag.SizeOrCountAttributeNotFound {
		t.Fatalf("got %v, want SizeOrCountAttributeNotFound", de.ID)
	}
}

func TestPointerToVoidWithoutAttrs(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F(void* p); }; };`)
	if de.ID != diag.PointerToVoidMustBeAnnotated {
		t.Fatalf("got %v, want PointerToVoidMustBeAnnotated", de.ID)
	}
}

func TestReturnPointerForbidden(t *testing.T) {
	de := parseErr(t, `enclave { trusted { uint8_t* F(); }; };`)
	if de.ID != diag.ReturnValuesCannotBePointers {
		t.Fatalf("got %v, want ReturnValuesCannotBePointers", de.ID)
	}
}

func TestForwardReferenceErrors(t *testing.T) {
	de := parseErr(t, `enclave { struct A { B b; }; struct B { uint32_t x; }; };`)
	if de.ID != diag.DeveloperTypesMustBeDefinedBeforeUse {
		t.Fatalf("got %v, want DeveloperTypesMustBeDefinedBeforeUse", de.ID)
	}
}

func TestOverloadedFunctionsGetSequentialAbiNames(t *testing.T) {
	edl := mustParse(t, `enclave {
		trusted { void F(uint32_t x); void F(uint64_t x); };
		untrusted { void G(); };
	};`)

	if got := edl.TrustedList[0].AbiName; got != "F_0" {
		t.Fatalf("F(uint32_t).AbiName = %q, want F_0", got)
	}
	if got := edl.TrustedList[1].AbiName; got != "F_1" {
		t.Fatalf("F(uint64_t).AbiName = %q, want F_1", got)
	}
	if got := edl.UntrustedList[0].AbiName; got != "G_2" {
		t.Fatalf("G().AbiName = %q, want G_2", got)
	}
}

func TestEmptyBanksAreLegal(t *testing.T) {
	edl := mustParse(t, `enclave { trusted { }; untrusted { }; };`)
	if len(edl.TrustedList) != 0 || len(edl.UntrustedList) != 0 {
		t.Fatal("expected both banks empty")
	}
}

func TestEnumSingleMemberNoTrailingComma(t *testing.T) {
	edl := mustParse(t, `enclave { enum { A }; };`)
	anon := edl.DeveloperTypes[ir.AnonymousEnumName]
	if anon == nil || len(anon.ItemOrder) != 1 || anon.ItemOrder[0] != "A" {
		t.Fatalf("unexpected anon enum: %+v", anon)
	}
	if !anon.Items["A"].IsDefault {
		t.Fatal("first member should be default")
	}
}

func TestEnumTrailingCommaErrors(t *testing.T) {
	de := parseErr(t, `enclave { enum { A, }; };`)
	if de.ID != diag.EnumValueIdentifierNotFound {
		t.Fatalf("got %v, want EnumValueIdentifierNotFound", de.ID)
	}
}

func TestEmptyStructIsLegalWithFalseMetadata(t *testing.T) {
	edl := mustParse(t, `enclave { struct S { }; };`)
	s := edl.DeveloperTypes["S"]
	if s.ContainsInnerPointer || s.ContainsContainerType {
		t.Fatal("empty struct should have both metadata flags false")
	}
}

func TestZeroSizeLiteralOnPointerIsLegal(t *testing.T) {
	mustParse(t, `enclave { trusted { void F([in, size=0] uint8_t* buf); }; };`)
}

func TestAnonymousEnumMembersUsableAsArrayDimension(t *testing.T) {
	edl := mustParse(t, `enclave {
		enum { COUNT = 4 };
		trusted { void F(uint32_t arr[COUNT]); };
	};`)
	fn := edl.TrustedList[0]
	if len(fn.Parameters[0].ArrayDimensions) != 1 || fn.Parameters[0].ArrayDimensions[0].Text != "COUNT" {
		t.Fatalf("unexpected array dims: %+v", fn.Parameters[0].ArrayDimensions)
	}
}

func TestDuplicateStructFieldErrors(t *testing.T) {
	de := parseErr(t, `enclave { struct S { uint32_t x; uint32_t x; }; };`)
	if de.ID != diag.DuplicateFieldOrParameter {
		t.Fatalf("got %v, want DuplicateFieldOrParameter", de.ID)
	}
}

func TestNonIdentifierAsStructNameErrors(t *testing.T) {
	de := parseErr(t, `enclave { struct { uint32_t x; }; }; };`)
	if de.ID != diag.StructIdentifierNotFound {
		t.Fatalf("got %v, want StructIdentifierNotFound", de.ID)
	}
}

func TestStructuralKeywordAsStructNameIsReserved(t *testing.T) {
	de := parseErr(t, `enclave { struct enum { uint32_t x; }; };`)
	if de.ID != diag.TypeNameIdentifierIsReserved {
		t.Fatalf("got %v, want TypeNameIdentifierIsReserved", de.ID)
	}
}

func TestReservedPrimitiveNameAsStructNameErrors(t *testing.T) {
	de := parseErr(t, `enclave { struct uint32_t { uint32_t x; }; };`)
	if de.ID != diag.TypeNameIdentifierIsReserved {
		t.Fatalf("got %v, want TypeNameIdentifierIsReserved", de.ID)
	}
}

func TestVectorOfPreviouslyDeclaredStruct(t *testing.T) {
	edl := mustParse(t, `enclave {
		struct Item { uint32_t x; };
		trusted { void F(vector<Item> items); };
	};`)
	items := edl.TrustedList[0].Parameters[0]
	if items.TypeInfo.Kind != ir.Vector || items.TypeInfo.InnerType.Name != "Item" {
		t.Fatalf("unexpected vector param: %+v", items.TypeInfo)
	}
}

func TestNestedVectorErrors(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F(vector<vector<uint32_t>> v); }; };`)
	if de.ID != diag.TypeInVectorMustBePreviouslyDefined {
		t.Fatalf("got %v, want TypeInVectorMustBePreviouslyDefined", de.ID)
	}
}

func TestPointerCombinedWithArrayInParamErrors(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F([in, size=4] uint8_t* p[4]); }; };`)
	if de.ID != diag.PointerToArrayNotAllowed {
		t.Fatalf("got %v, want PointerToArrayNotAllowed", de.ID)
	}
}

func TestDirectionAttributeInStructFieldErrors(t *testing.T) {
	de := parseErr(t, `enclave { struct S { [in] uint32_t x; }; };`)
	if de.ID != diag.NonSizeOrCountAttributeInStruct {
		t.Fatalf("got %v, want NonSizeOrCountAttributeInStruct", de.ID)
	}
}

func TestDuplicateAttributeKeyErrors(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F([size=1,size=2] uint8_t* p); }; };`)
	if de.ID != diag.DuplicateAttributeFound {
		t.Fatalf("got %v, want DuplicateAttributeFound", de.ID)
	}
}

func TestEqualsAfterInAttributeErrors(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F([in=1] uint32_t x); }; };`)
	if de.ID != diag.InvalidAttribute {
		t.Fatalf("got %v, want InvalidAttribute", de.ID)
	}
}

func TestStructContainsInnerPointerPropagatesTransitively(t *testing.T) {
	edl := mustParse(t, `enclave {
		struct Inner { [size=n] uint8_t* p; uint32_t n; };
		struct Outer { Inner inner; };
	};`)
	inner := edl.DeveloperTypes["Inner"]
	outer := edl.DeveloperTypes["Outer"]
	if !inner.ContainsInnerPointer {
		t.Fatal("Inner should contain a pointer directly")
	}
	if !outer.ContainsInnerPointer {
		t.Fatal("Outer should inherit ContainsInnerPointer from Inner")
	}
}

func TestSizeAttributeOnNonPointerErrors(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F([size=4] uint32_t x); }; };`)
	if de.ID != diag.SizeAndCountNotValidForNonPointer {
		t.Fatalf("got %v, want SizeAndCountNotValidForNonPointer", de.ID)
	}
}

func TestSizeSiblingMustBeUnsignedInteger(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F([in, size=n] uint8_t* p, int32_t n); }; };`)
	if de.ID != diag.SizeOrCountInvalidType {
		t.Fatalf("got %v, want SizeOrCountInvalidType", de.ID)
	}
}

func TestFunctionOverloadDuplicateErrors(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F(uint32_t x); void F(uint32_t y); }; };`)
	if de.ID != diag.DuplicateFunctionDeclaration {
		t.Fatalf("got %v, want DuplicateFunctionDeclaration", de.ID)
	}
}

func TestSecondArrayDimensionErrors(t *testing.T) {
	de := parseErr(t, `enclave { trusted { void F(uint32_t x[4][4]); }; };`)
	if de.ID != diag.OnlySingleDimensionsSupported {
		t.Fatalf("got %v, want OnlySingleDimensionsSupported", de.ID)
	}
}
