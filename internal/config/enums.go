package config

import (
	"encoding"
	"fmt"
)

// Backend selects the native parser.
type Backend int

const (
	_ Backend = iota
	BackendClangJSON
	BackendTreeSitter
)

var backendValueMap = map[Backend]string{
	BackendClangJSON:  "clang-json",
	BackendTreeSitter: "tree-sitter",
}

func (b Backend) String() string {
	v, ok := backendValueMap[b]
	if !ok {
		return fmt.Sprintf("backend-invalid(%d)", b)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = Backend(0)
	_ encoding.TextUnmarshaler = (*Backend)(nil)
)

func (b *Backend) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range backendValueMap {
		if v == text {
			*b = k
			return nil
		}
	}

	return fmt.Errorf("unknown backend %q", text)
}

func (b Backend) MarshalText() ([]byte, error) {
	v, ok := backendValueMap[b]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Backend(%d)", b)
	}

	return []byte(v), nil
}

// OutputFormat selects how trees and reports are printed.
type OutputFormat int

const (
	_ OutputFormat = iota
	OutputText
	OutputYAML
)

var outputValueMap = map[OutputFormat]string{
	OutputText: "text",
	OutputYAML: "yaml",
}

func (f OutputFormat) String() string {
	v, ok := outputValueMap[f]
	if !ok {
		return fmt.Sprintf("output-invalid(%d)", f)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = OutputFormat(0)
	_ encoding.TextUnmarshaler = (*OutputFormat)(nil)
)

func (f *OutputFormat) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range outputValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown output format %q", text)
}

func (f OutputFormat) MarshalText() ([]byte, error) {
	v, ok := outputValueMap[f]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid OutputFormat(%d)", f)
	}

	return []byte(v), nil
}
