package structures

import (
	"errors"
	"fmt"
)

// InvalidInputError는 입력을 사용 가능한 데이터로 해석하지 못했을 때 발생합니다.
// 이 오류만 요청 전체를 중단시키며, 제공자 단위 실패는 여기에 해당하지 않습니다.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "유효하지 않은 입력: " + e.Reason
}

// NewInvalidInputError는 새 InvalidInputError를 생성합니다
func NewInvalidInputError(format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput은 오류 체인에 InvalidInputError가 있는지 확인합니다
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
