// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package validation

import (
	"strings"
	"testing"
)

type testQuery struct {
	Query string `query:"q" validate:"omitempty,max=20,title"`
	Limit int    `query:"limit" validate:"min=0,max=100"`
}

type testSettings struct {
	Host  string `koanf:"host" validate:"required"`
	Mode  string `json:"mode" validate:"oneof=json console"`
	Inner int    `validate:"gte=1"`
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() = nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{"valid query", &testQuery{Query: "Jurassic Park", Limit: 10}, "", ""},
		{"empty query", &testQuery{Limit: 0}, "", ""},
		{"limit too high", &testQuery{Limit: 101}, "limit", "max"},
		{"negative limit", &testQuery{Limit: -1}, "limit", "min"},
		{"query too long", &testQuery{Query: strings.Repeat("a", 21)}, "q", "max"},
		{"query with padding", &testQuery{Query: " Titanic "}, "", ""},
		{"query with tab", &testQuery{Query: "Ti\ttanic"}, "q", "title"},
		{"query with control char", &testQuery{Query: "Ti\x00tanic"}, "q", "title"},
		{"koanf name", &testSettings{Mode: "json", Inner: 1}, "host", "required"},
		{"json name", &testSettings{Host: "x", Mode: "xml", Inner: 1}, "mode", "oneof"},
		{"go name fallback", &testSettings{Host: "x", Mode: "json"}, "Inner", "gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Errors()) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1", len(err.Errors()))
			}
			fe := err.Errors()[0]
			if fe.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", fe.Field(), tt.wantField)
			}
			if fe.Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", fe.Tag(), tt.wantTag)
			}
		})
	}
}

func TestTranslateMessages(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"max number", &testQuery{Limit: 500}, "limit must be at most 100"},
		{"max string", &testQuery{Query: strings.Repeat("b", 30)}, "q must be at most 20 characters"},
		{"required", &testSettings{Mode: "json", Inner: 1}, "host is required"},
		{"oneof", &testSettings{Host: "h", Mode: "text", Inner: 1}, "mode must be one of: json console"},
		{"gte", &testSettings{Host: "h", Mode: "json"}, "Inner must be greater than or equal to 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		apiErr := ValidateStruct(&testQuery{Limit: 101}).ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
		}
		if apiErr.Details["field"] != "limit" {
			t.Errorf("Details[field] = %v, want limit", apiErr.Details["field"])
		}
	})

	t.Run("multiple", func(t *testing.T) {
		apiErr := ValidateStruct(&testQuery{Query: " x", Limit: -5}).ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok {
			t.Fatalf("Details[fields] type = %T", apiErr.Details["fields"])
		}
		if len(fields) != 2 {
			t.Errorf("len(fields) = %d, want 2", len(fields))
		}
		if !strings.Contains(apiErr.Message, "; ") {
			t.Errorf("Message = %q, want joined messages", apiErr.Message)
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q, want %q", apiErr.Message, "Validation failed")
		}
	})
}
