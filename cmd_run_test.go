package main

import (
	"testing"

	"blc/driver"
)

func TestParseProgramStandard(t *testing.T) {
	_, err := parseProgram(`\x. x;`, "standard", false)
	if err != nil {
		t.Fatalf("parseProgram raised an error: %v", err)
	}
}

func TestParseProgramStandardWithPrelude(t *testing.T) {
	_, err := parseProgram(`inc zero;`, "standard", true)
	if err != nil {
		t.Fatalf("parseProgram raised an error: %v", err)
	}
}

func TestParseProgramBinary(t *testing.T) {
	_, err := parseProgram("0100100010", "binary", false)
	if err != nil {
		t.Fatalf("parseProgram raised an error: %v", err)
	}
}

func TestParseProgramUnknownInputFmt(t *testing.T) {
	_, err := parseProgram(`x;`, "weird", false)
	if err == nil {
		t.Fatalf("parseProgram() expected an error for an unknown input format")
	}
}

func TestParseOutputMode(t *testing.T) {
	tests := []struct {
		name string
		want driver.Mode
	}{
		{name: "bytes", want: driver.ModeBytes},
		{name: "bits", want: driver.ModeBits},
	}
	for _, tt := range tests {
		got, err := parseOutputMode(tt.name)
		if err != nil {
			t.Fatalf("parseOutputMode(%q) raised an error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("parseOutputMode(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseOutputModeUnknown(t *testing.T) {
	_, err := parseOutputMode("hex")
	if err == nil {
		t.Fatalf("parseOutputMode() expected an error for an unknown output format")
	}
}
