// Package respond shapes every handler reply into the uniform API envelope:
// {status:"success", data:{...}} for successful calls and
// {status:"fail", message} for client-caused failures.
package respond

import "github.com/gofiber/fiber/v2"

// Success writes {status:"success", data:{<key>: payload}}.
func Success(c *fiber.Ctx, status int, key string, payload any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{key: payload},
	})
}

// SuccessWithToken writes the auth variant of the envelope, which carries
// the bearer token at the top level next to the data object.
func SuccessWithToken(c *fiber.Ctx, status int, token string, key string, payload any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"token":  token,
		"data":   fiber.Map{key: payload},
	})
}

// Fail writes {status:"fail", message} with the given status code.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "fail",
		"message": message,
	})
}
