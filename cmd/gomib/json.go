package main

import "encoding/json"

// DumpOutput is the top-level JSON output for the dump command. Each
// module's document is emitted as-is: the generator's own ordered,
// JSON-shaped record of every symbol the module defines.
type DumpOutput struct {
	Modules     map[string]*Document `json:"modules"`
	Diagnostics []DiagnosticJSON     `json:"diagnostics,omitempty"`
}

// DiagnosticJSON holds a parser or resolver diagnostic.
type DiagnosticJSON struct {
	Severity string `json:"severity,omitempty"`
	Code     string `json:"code,omitempty"`
	Module   string `json:"module,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

func marshalJSON(v any, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
