package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad input")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad input" {
		t.Errorf("expected message 'bad input', got %q", err.Message)
	}
}

func TestAppError_LinkNotFound_Success(t *testing.T) {
	err := LinkNotFound("put", []string{"delete", "self"})
	if err.Code != ErrCodeLinkNotFound {
		t.Errorf("expected LINK_NOT_FOUND, got %s", err.Code)
	}
	if err.Details["rel"] != "put" {
		t.Errorf("expected rel=put, got %v", err.Details["rel"])
	}
	available, ok := err.Details["available"].([]string)
	if !ok || len(available) != 2 {
		t.Errorf("expected two available rels, got %v", err.Details["available"])
	}
	if !strings.Contains(err.Error(), `"put"`) {
		t.Errorf("expected message to quote the rel, got %q", err.Error())
	}
}

func TestAppError_InvalidResource_DefaultReason(t *testing.T) {
	err := InvalidResource("")
	if err.Code != ErrCodeInvalidResource {
		t.Errorf("expected INVALID_RESOURCE, got %s", err.Code)
	}
	if err.Message != "resource has no link collection" {
		t.Errorf("unexpected default message %q", err.Message)
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("email", "bad format")
	if err.Details["field"] != "email" {
		t.Errorf("expected field=email, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "bad format") {
		t.Errorf("expected message to contain reason, got %q", err.Message)
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "nope")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Decode(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := MissingField("id").WithDetails(map[string]any{"service": "valueset"})
	if err.Details["field"] != "id" {
		t.Errorf("expected field=id to survive merge, got %v", err.Details["field"])
	}
	if err.Details["service"] != "valueset" {
		t.Errorf("expected service=valueset, got %v", err.Details["service"])
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "x").WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"LinkNotFound", LinkNotFound("put", nil), ErrCodeLinkNotFound},
		{"InvalidResource", InvalidResource("raw payload"), ErrCodeInvalidResource},
		{"InvalidInput", InvalidInput("f", "r"), ErrCodeInvalidInput},
		{"Validation", Validation("v"), ErrCodeInvalidInput},
		{"MissingField", MissingField("f"), ErrCodeMissingField},
		{"InvalidConfig", InvalidConfig("c"), ErrCodeInvalidConfig},
		{"Decode", Decode(fmt.Errorf("eof")), ErrCodeDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
		})
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("resolve update target: %w", LinkNotFound("put", nil))

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Code != ErrCodeLinkNotFound {
		t.Errorf("expected LINK_NOT_FOUND, got %s", appErr.Code)
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError=true")
	}
	if !HasCode(wrapped, ErrCodeLinkNotFound) {
		t.Error("expected HasCode=true")
	}
	if HasCode(wrapped, ErrCodeInvalidResource) {
		t.Error("expected HasCode=false for other code")
	}
}

func TestAsAppError_PlainError(t *testing.T) {
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected plain error not to convert")
	}
	if HasCode(nil, ErrCodeDecode) {
		t.Error("expected HasCode(nil) = false")
	}
}
