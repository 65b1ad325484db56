package ir

import "testing"

func TestEdlAddDeveloperTypePreservesFirstSeenOrder(t *testing.T) {
	e := New("test")
	a := NewStruct("A")
	b := NewStruct("B")
	e.AddDeveloperType(&a)
	e.AddDeveloperType(&b)

	if len(e.DeveloperTypesOrder) != 2 {
		t.Fatalf("order len = %d, want 2", len(e.DeveloperTypesOrder))
	}
	if e.DeveloperTypesOrder[0].Name != "A" || e.DeveloperTypesOrder[1].Name != "B" {
		t.Fatalf("unexpected order: %v", e.DeveloperTypesOrder)
	}
}

func TestEdlAddDeveloperTypeRedeclarationDoesNotDuplicateOrder(t *testing.T) {
	e := New("test")
	a1 := NewStruct("A")
	a2 := NewStruct("A")
	e.AddDeveloperType(&a1)
	e.AddDeveloperType(&a2)

	if len(e.DeveloperTypesOrder) != 1 {
		t.Fatalf("order len = %d, want 1", len(e.DeveloperTypesOrder))
	}
	if e.DeveloperTypes["A"] != &a2 {
		t.Fatal("second registration should replace the lookup entry")
	}
}

func TestFunctionSignatureDisambiguatesByParamTypes(t *testing.T) {
	f1 := &Function{Name: "foo", Parameters: []Declaration{{TypeInfo: TypeInfo{Name: "int32_t", Kind: Int32}}}}
	f2 := &Function{Name: "foo", Parameters: []Declaration{{TypeInfo: TypeInfo{Name: "int32_t", Kind: Int32, IsPointer: true}}}}

	if f1.Signature() == f2.Signature() {
		t.Fatalf("expected distinct signatures, both are %q", f1.Signature())
	}
	if f1.Signature() != "foo(int32_t)" {
		t.Fatalf("f1.Signature() = %q", f1.Signature())
	}
	if f2.Signature() != "foo(int32_t*)" {
		t.Fatalf("f2.Signature() = %q", f2.Signature())
	}
}

func TestEdlAddFunctionRoutesByTrustBank(t *testing.T) {
	e := New("test")
	trusted := &Function{Name: "ecall_do"}
	untrusted := &Function{Name: "ocall_log"}
	e.AddFunction(true, trusted)
	e.AddFunction(false, untrusted)

	if len(e.TrustedList) != 1 || e.TrustedList[0] != trusted {
		t.Fatal("trusted bank not populated correctly")
	}
	if len(e.UntrustedList) != 1 || e.UntrustedList[0] != untrusted {
		t.Fatal("untrusted bank not populated correctly")
	}
	if _, ok := e.TrustedMap[trusted.Signature()]; !ok {
		t.Fatal("trusted map missing entry")
	}
}

func TestLookupPrimitiveKnownAndUnknown(t *testing.T) {
	if k, ok := LookupPrimitive("uint32_t"); !ok || k != UInt32 {
		t.Fatalf("LookupPrimitive(uint32_t) = %v, %v", k, ok)
	}
	if _, ok := LookupPrimitive("MyStruct"); ok {
		t.Fatal("LookupPrimitive(MyStruct) should not be a primitive")
	}
}

func TestTypeKindIsUnsignedInteger(t *testing.T) {
	cases := map[TypeKind]bool{
		UInt8: true, UInt16: true, UInt32: true, UInt64: true, SizeT: true,
		Int32: false, Float: false, Bool: false,
	}
	for k, want := range cases {
		if got := k.IsUnsignedInteger(); got != want {
			t.Errorf("%v.IsUnsignedInteger() = %v, want %v", k, got, want)
		}
	}
}

func TestDeveloperTypeAddMemberPreservesOrder(t *testing.T) {
	d := NewEnum("Color", false)
	d.AddMember(EnumMember{Name: "Red", Position: 0})
	d.AddMember(EnumMember{Name: "Green", Position: 1})
	d.AddMember(EnumMember{Name: "Blue", Position: 2})

	if len(d.ItemOrder) != 3 || d.ItemOrder[2] != "Blue" {
		t.Fatalf("unexpected item order: %v", d.ItemOrder)
	}
	if _, ok := d.Items["Green"]; !ok {
		t.Fatal("Green missing from Items")
	}
}
