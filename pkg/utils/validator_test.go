package utils

import (
	"strings"
	"testing"
)

type validatorFixture struct {
	Text     string   `json:"text" validate:"required,max=10"`
	Language string   `json:"language" validate:"max=16"`
	Mode     string   `json:"mode" validate:"oneof=fast slow"`
	Items    []string `json:"items" validate:"min=1"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     validatorFixture
		wantField string
	}{
		{
			name:  "valid input",
			input: validatorFixture{Text: "hello", Mode: "fast", Items: []string{"a"}},
		},
		{
			name:      "missing required field",
			input:     validatorFixture{Mode: "fast", Items: []string{"a"}},
			wantField: "text",
		},
		{
			name:      "over max length",
			input:     validatorFixture{Text: strings.Repeat("x", 11), Mode: "fast", Items: []string{"a"}},
			wantField: "text",
		},
		{
			name:      "not in oneof set",
			input:     validatorFixture{Text: "hello", Mode: "medium", Items: []string{"a"}},
			wantField: "mode",
		},
		{
			name:      "under min size",
			input:     validatorFixture{Text: "hello", Mode: "slow"},
			wantField: "items",
		},
		{
			// 빈 선택 문자열은 oneof 검사 대상이 아님
			name:  "empty oneof field passes",
			input: validatorFixture{Text: "hello", Items: []string{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := NewValidator().Validate(&tt.input)
			if tt.wantField == "" {
				if errors.HasErrors() {
					t.Errorf("예상치 못한 검증 오류: %v", errors)
				}
				return
			}
			if _, exists := errors[tt.wantField]; !exists {
				t.Errorf("필드 %q의 오류가 없습니다: %v", tt.wantField, errors)
			}
		})
	}
}
