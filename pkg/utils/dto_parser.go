package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ParseAndValidateBody는 요청 본문을 DTO로 변환하고 검증합니다.
// dto: 변환될 DTO 구조체 포인터 (빈 구조체 전달)
// 반환값: 에러가 있으면 fiber.Error, 성공 시 nil 반환
func ParseAndValidateBody(c *fiber.Ctx, dto interface{}) error {
	if err := c.BodyParser(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "요청 본문 파싱 실패: "+err.Error())
	}

	errors := NewValidator().Validate(dto)
	if errors.HasErrors() {
		return fiber.NewError(fiber.StatusBadRequest, errors.Error())
	}

	return nil
}
