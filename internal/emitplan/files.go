package emitplan

import "edlgen/internal/ir"

// The six logical output files spec.md §4.F.1 names. Names are stable
// identifiers, not filesystem paths — the out-of-scope text renderer picks
// actual file extensions and directory layout.
const (
	FileTrustedHost       = "trusted_host"
	FileTrustedEnclave    = "trusted_enclave"
	FileUntrustedHost     = "untrusted_host"
	FileUntrustedEnclave  = "untrusted_enclave"
	FileAbiDefinitions    = "abi_definitions"
	FileSerializedRecords = "serialized_records"
)

func buildFiles(edl *ir.Edl) []FilePlan {
	return []FilePlan{
		buildTrustedHostFile(edl),
		buildTrustedEnclaveFile(edl),
		buildUntrustedHostFile(edl),
		buildUntrustedEnclaveFile(edl),
		buildAbiDefinitionsFile(edl),
		buildSerializedRecordsFile(edl),
	}
}

// buildTrustedHostFile lists the host-callable stubs that marshal
// in/in_out parameters, invoke the enclave entry, and copy out/in_out
// results back.
func buildTrustedHostFile(edl *ir.Edl) FilePlan {
	sections := make([]string, 0, len(edl.TrustedList))
	for _, fn := range edl.TrustedList {
		sections = append(sections, "stub:"+fn.Name)
	}
	return FilePlan{Name: FileTrustedHost, Sections: sections}
}

// buildTrustedEnclaveFile lists the enclave-side entry points developers
// implement.
func buildTrustedEnclaveFile(edl *ir.Edl) FilePlan {
	sections := make([]string, 0, len(edl.TrustedList))
	for _, fn := range edl.TrustedList {
		sections = append(sections, "entry:"+fn.Name)
	}
	return FilePlan{Name: FileTrustedEnclave, Sections: sections}
}

// buildUntrustedHostFile lists the host-side callback dispatch table
// entries developers implement.
func buildUntrustedHostFile(edl *ir.Edl) FilePlan {
	sections := make([]string, 0, len(edl.UntrustedList))
	for _, fn := range edl.UntrustedList {
		sections = append(sections, "dispatch:"+fn.Name)
	}
	return FilePlan{Name: FileUntrustedHost, Sections: sections}
}

// buildUntrustedEnclaveFile lists the enclave-callable stubs for calling
// back into the host.
func buildUntrustedEnclaveFile(edl *ir.Edl) FilePlan {
	sections := make([]string, 0, len(edl.UntrustedList))
	for _, fn := range edl.UntrustedList {
		sections = append(sections, "callback_stub:"+fn.Name)
	}
	return FilePlan{Name: FileUntrustedEnclave, Sections: sections}
}

// buildAbiDefinitionsFile lists the shared data-direction tags, record
// type aliases, and one exported-symbol entry per function: every trusted
// function first, then every untrusted one, each bank in declaration order.
func buildAbiDefinitionsFile(edl *ir.Edl) FilePlan {
	sections := []string{"direction_tags", "record_aliases"}
	for _, fn := range edl.TrustedList {
		sections = append(sections, "export:"+fn.AbiName)
	}
	for _, fn := range edl.UntrustedList {
		sections = append(sections, "export:"+fn.AbiName)
	}
	return FilePlan{Name: FileAbiDefinitions, Sections: sections}
}

// buildSerializedRecordsFile lists one record per developer type plus one
// inputs/outputs record pair per function.
func buildSerializedRecordsFile(edl *ir.Edl) FilePlan {
	sections := make([]string, 0, len(edl.DeveloperTypesOrder)+2*(len(edl.TrustedList)+len(edl.UntrustedList)))
	for _, dt := range edl.DeveloperTypesOrder {
		sections = append(sections, "type:"+dt.Name)
	}
	for _, fn := range edl.TrustedList {
		sections = append(sections, "args:"+fn.AbiName, "rets:"+fn.AbiName)
	}
	for _, fn := range edl.UntrustedList {
		sections = append(sections, "args:"+fn.AbiName, "rets:"+fn.AbiName)
	}
	return FilePlan{Name: FileSerializedRecords, Sections: sections}
}
