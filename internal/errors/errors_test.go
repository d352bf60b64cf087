package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	base := SchemaMismatch("accident", "WEATHERNAME")
	wrapped := Wrap(base, "startup data load failed")

	if GetCode(wrapped) != CodeSchemaMismatch {
		t.Errorf("Expected wrapped error to keep code %s, got %s", CodeSchemaMismatch, GetCode(wrapped))
	}
	if !strings.Contains(wrapped.Error(), "startup data load failed") {
		t.Errorf("Wrapped message missing context: %q", wrapped.Error())
	}
	if !strings.Contains(wrapped.Error(), "WEATHERNAME") {
		t.Errorf("Wrapped message lost the cause: %q", wrapped.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "anything") != nil {
		t.Error("Wrapping nil should stay nil")
	}
}

func TestLoadErrorUnwrapsToCause(t *testing.T) {
	cause := ParseError("person", New(CodeParseError, "file must have a header row and at least one data row"))
	err := LoadError(cause)

	if GetCode(err) != CodeLoadError {
		t.Errorf("Expected %s, got %s", CodeLoadError, GetCode(err))
	}
	if err.Unwrap() != cause {
		t.Error("LoadError should unwrap to the source failure")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(ConfigInvalid("DATA_DIR is required")); got != CodeConfigInvalid {
		t.Errorf("Expected %s, got %s", CodeConfigInvalid, got)
	}
	if got := GetCode(fmt.Errorf("plain error")); got != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN for a plain error, got %s", got)
	}
}
