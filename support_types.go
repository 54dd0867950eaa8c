package main

import (
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/sirkon/cxcursor/internal/config"
)

// Flag values for config enums. They reuse UnmarshalText of the enums, so
// flags and the config file accept the same spellings.

var (
	_ pflag.Value = (*backendFlag)(nil)
	_ pflag.Value = (*outputFlag)(nil)
	_ pflag.Value = (*levelFlag)(nil)
)

type backendFlag struct {
	value config.Backend
}

func (f *backendFlag) String() string {
	if f.value == 0 {
		return ""
	}

	return f.value.String()
}

func (f *backendFlag) Set(s string) error {
	return f.value.UnmarshalText([]byte(s))
}

func (f *backendFlag) Type() string {
	return "backend"
}

type outputFlag struct {
	value config.OutputFormat
}

func (f *outputFlag) String() string {
	if f.value == 0 {
		return ""
	}

	return f.value.String()
}

func (f *outputFlag) Set(s string) error {
	return f.value.UnmarshalText([]byte(s))
}

func (f *outputFlag) Type() string {
	return "format"
}

type levelFlag struct {
	value zapcore.Level
}

func (f *levelFlag) String() string {
	return f.value.String()
}

func (f *levelFlag) Set(s string) error {
	return f.value.UnmarshalText([]byte(s))
}

func (f *levelFlag) Type() string {
	return "level"
}
