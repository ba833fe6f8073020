package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ValidationErrors는 모든 유효성 검사 오류를 저장합니다
type ValidationErrors map[string]string

// Add는 ValidationErrors에 새 오류를 추가합니다
func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// HasErrors는 ValidationErrors에 오류가 있는지 확인합니다
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error는 ValidationErrors를 문자열로 반환합니다
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}

	var errors []string
	for field, message := range v {
		errors = append(errors, fmt.Sprintf("%s: %s", field, message))
	}

	return strings.Join(errors, ", ")
}

// StructValidator는 struct 태그를 기반으로 유효성을 검사합니다
type StructValidator struct{}

// NewValidator는 새 StructValidator를 생성합니다
func NewValidator() *StructValidator {
	return &StructValidator{}
}

// Validate는 구조체의 유효성을 검사합니다
// 지원되는 태그:
// - required: 필드가 비어있으면 안됨
// - min=n / max=n: 숫자 필드 범위, 문자열/슬라이스는 길이
// - oneof=a b c: 문자열 필드가 나열된 값 중 하나여야 함
func (v *StructValidator) Validate(data interface{}) ValidationErrors {
	errors := make(ValidationErrors)

	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		errors.Add("_error", "유효성 검사는 구조체만 가능합니다")
		return errors
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		typeField := typ.Field(i)

		validateTag := typeField.Tag.Get("validate")
		if validateTag == "" {
			continue
		}

		// JSON 태그에서 필드 이름 가져오기 (없으면 구조체 필드 이름 사용)
		fieldName := typeField.Name
		if jsonTag := typeField.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" && parts[0] != "-" {
				fieldName = parts[0]
			}
		}

		// 하나의 필드에 대해 첫 번째 오류만 보고
		for _, rule := range strings.Split(validateTag, ",") {
			if msg := validateField(field, rule); msg != "" {
				errors.Add(fieldName, msg)
				break
			}
		}
	}

	return errors
}

// validateField는 단일 필드에 대한 유효성 검사 규칙을 적용합니다
func validateField(field reflect.Value, rule string) string {
	parts := strings.SplitN(rule, "=", 2)
	ruleName := parts[0]

	var param string
	if len(parts) > 1 {
		param = parts[1]
	}

	switch ruleName {
	case "required":
		if isEmptyValue(field) {
			return "필수 항목입니다"
		}

	case "min":
		n, _ := strconv.Atoi(param)
		if size, ok := fieldSize(field); ok && size < n {
			return fmt.Sprintf("최소 %d 이상이어야 합니다", n)
		}

	case "max":
		n, _ := strconv.Atoi(param)
		if size, ok := fieldSize(field); ok && size > n {
			return fmt.Sprintf("최대 %d 이하여야 합니다", n)
		}

	case "oneof":
		if field.Kind() == reflect.String && field.String() != "" {
			for _, allowed := range strings.Fields(param) {
				if field.String() == allowed {
					return ""
				}
			}
			return fmt.Sprintf("허용된 값이 아닙니다 (허용: %s)", param)
		}
	}

	return ""
}

// isEmptyValue는 필드가 비어있는지 확인합니다
func isEmptyValue(field reflect.Value) bool {
	if !field.IsValid() {
		return true
	}

	switch field.Kind() {
	case reflect.String:
		return field.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() == 0
	case reflect.Float32, reflect.Float64:
		return field.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return field.IsNil()
	}

	return false
}

// fieldSize는 min/max 비교에 사용할 필드 크기를 반환합니다.
// 빈 문자열은 required가 아닌 한 검사 대상이 아닙니다.
func fieldSize(field reflect.Value) (int, bool) {
	switch field.Kind() {
	case reflect.String:
		if field.String() == "" {
			return 0, false
		}
		return len(field.String()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(field.Int()), true
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len(), true
	}
	return 0, false
}
