package helper

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

const bodyEchoLimit = 256

// DecodeBody decodes the JSON request body into dst.
func DecodeBody(c *fiber.Ctx, dst interface{}) error {
	return sonic.Unmarshal(c.Body(), dst)
}

// MalformedBody answers 400 with a truncated echo of the offending payload.
func MalformedBody(c *fiber.Ctx) error {
	echo := string(c.Body())
	if len(echo) > bodyEchoLimit {
		echo = echo[:bodyEchoLimit]
	}
	return ErrorWithDetails(c, fiber.StatusBadRequest, "Malformed JSON body", fiber.Map{
		"body": echo,
	})
}
