package diag

// Code is the closed taxonomy of EDL analysis failures. The set is fixed —
// nothing in the parser raises a code outside this list.
type Code uint8

const (
	UnknownCode Code = iota

	ExpectedTokenNotFound
	UnexpectedToken
	DuplicateTypeDefinition
	TypeNameIdentifierIsReserved
	DuplicateFieldOrParameter
	EnumNameIdentifierNotFound
	EnumValueIdentifierNotFound
	EnumValueNotFound
	EnumNameDuplicated
	StructIdentifierNotFound
	IdentifierNameNotFound
	InvalidAttribute
	DuplicateAttributeFound
	NonSizeOrCountAttributeInStruct
	SizeOrCountValueInvalid
	SizeAndCountNotValidForNonPointer
	SizeOrCountAttributeNotFound
	SizeOrCountForArrayNotValid
	SizeOrCountInvalidType
	PointerToVoidMustBeAnnotated
	PointerToPointerInvalid
	PointerToArrayNotAllowed
	ReturnValuesCannotBePointers
	OnlySingleDimensionsSupported
	ArrayDimensionIdentifierInvalid
	FunctionIdentifierNotFound
	DuplicateFunctionDeclaration
	VectorDoesNotStartWithArrowBracket
	VectorNameIdentifierNotFound
	TypeInVectorMustBePreviouslyDefined
	DeveloperTypesMustBeDefinedBeforeUse
)

var codeNames = map[Code]string{
	UnknownCode:                          "UnknownCode",
	ExpectedTokenNotFound:                "ExpectedTokenNotFound",
	UnexpectedToken:                      "UnexpectedToken",
	DuplicateTypeDefinition:              "DuplicateTypeDefinition",
	TypeNameIdentifierIsReserved:         "TypeNameIdentifierIsReserved",
	DuplicateFieldOrParameter:            "DuplicateFieldOrParameter",
	EnumNameIdentifierNotFound:           "EnumNameIdentifierNotFound",
	EnumValueIdentifierNotFound:          "EnumValueIdentifierNotFound",
	EnumValueNotFound:                    "EnumValueNotFound",
	EnumNameDuplicated:                   "EnumNameDuplicated",
	StructIdentifierNotFound:             "StructIdentifierNotFound",
	IdentifierNameNotFound:               "IdentifierNameNotFound",
	InvalidAttribute:                     "InvalidAttribute",
	DuplicateAttributeFound:              "DuplicateAttributeFound",
	NonSizeOrCountAttributeInStruct:      "NonSizeOrCountAttributeInStruct",
	SizeOrCountValueInvalid:              "SizeOrCountValueInvalid",
	SizeAndCountNotValidForNonPointer:    "SizeAndCountNotValidForNonPointer",
	SizeOrCountAttributeNotFound:         "SizeOrCountAttributeNotFound",
	SizeOrCountForArrayNotValid:          "SizeOrCountForArrayNotValid",
	SizeOrCountInvalidType:               "SizeOrCountInvalidType",
	PointerToVoidMustBeAnnotated:         "PointerToVoidMustBeAnnotated",
	PointerToPointerInvalid:              "PointerToPointerInvalid",
	PointerToArrayNotAllowed:             "PointerToArrayNotAllowed",
	ReturnValuesCannotBePointers:         "ReturnValuesCannotBePointers",
	OnlySingleDimensionsSupported:        "OnlySingleDimensionsSupported",
	ArrayDimensionIdentifierInvalid:      "ArrayDimensionIdentifierInvalid",
	FunctionIdentifierNotFound:           "FunctionIdentifierNotFound",
	DuplicateFunctionDeclaration:         "DuplicateFunctionDeclaration",
	VectorDoesNotStartWithArrowBracket:   "VectorDoesNotStartWithArrowBracket",
	VectorNameIdentifierNotFound:         "VectorNameIdentifierNotFound",
	TypeInVectorMustBePreviouslyDefined:  "TypeInVectorMustBePreviouslyDefined",
	DeveloperTypesMustBeDefinedBeforeUse: "DeveloperTypesMustBeDefinedBeforeUse",
}

// String returns the stable discriminant name, used by Error.Error and by
// diagfmt as the rendered error tag.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UnknownCode"
}

// messageTemplates holds the human-readable text for each code. This is not
// part of the stable contract — only Code is. %s verbs are filled
// positionally from Error.Args.
var messageTemplates = map[Code]string{
	UnknownCode:                          "unknown error",
	ExpectedTokenNotFound:                "expected %s but found %s",
	UnexpectedToken:                      "unexpected token %s",
	DuplicateTypeDefinition:              "type %s is already defined",
	TypeNameIdentifierIsReserved:         "%s is a reserved name and cannot be used as a type, function, field, or parameter name",
	DuplicateFieldOrParameter:            "%s is already declared in %s",
	EnumNameIdentifierNotFound:           "expected an identifier for the enum name, found %s",
	EnumValueIdentifierNotFound:          "expected an identifier for the enum value, found %s",
	EnumValueNotFound:                    "%s is not a valid decimal or hexadecimal enum value",
	EnumNameDuplicated:                   "enum value %s is already declared",
	StructIdentifierNotFound:             "expected an identifier for the struct name, found %s",
	IdentifierNameNotFound:               "expected an identifier, found %s",
	InvalidAttribute:                     "%s is not a valid attribute",
	DuplicateAttributeFound:              "duplicate attribute in the same attribute block",
	NonSizeOrCountAttributeInStruct:      "only size and count attributes are valid on a struct field",
	SizeOrCountValueInvalid:              "%s is not a valid size/count value; expected an unsigned integer literal or an identifier",
	SizeAndCountNotValidForNonPointer:    "size/count attributes are not valid on non-pointer type %s",
	SizeOrCountAttributeNotFound:         "%s does not name a sibling declaration in %s",
	SizeOrCountForArrayNotValid:          "size/count attribute in %s cannot refer to an array",
	SizeOrCountInvalidType:               "size/count attribute in %s must refer to an unsigned integer type, found %s",
	PointerToVoidMustBeAnnotated:         "a pointer to void must carry an attribute block",
	PointerToPointerInvalid:              "pointer to pointer is not supported",
	PointerToArrayNotAllowed:             "a pointer parameter cannot also have array dimensions or be a vector",
	ReturnValuesCannotBePointers:         "function %s cannot return a pointer",
	OnlySingleDimensionsSupported:        "only single-dimension arrays are supported",
	ArrayDimensionIdentifierInvalid:      "%s is not a valid array dimension; expected an unsigned integer or an anonymous enum member",
	FunctionIdentifierNotFound:           "expected an identifier for the function name, found %s",
	DuplicateFunctionDeclaration:         "function %s is already declared with the same parameter types in this bank",
	VectorDoesNotStartWithArrowBracket:   "expected '<' after vector",
	VectorNameIdentifierNotFound:         "expected an identifier for the vector's element type, found %s",
	TypeInVectorMustBePreviouslyDefined:  "%s must be a primitive or a previously declared developer type",
	DeveloperTypesMustBeDefinedBeforeUse: "%s must be declared before it is used",
}
