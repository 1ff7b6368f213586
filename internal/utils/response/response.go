// Package response renders the API envelope:
// {success, data|null, message, timestamp, errorCode?}.
package response

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"data":      data,
		"message":   message,
		"timestamp": time.Now().UTC(),
	})
}

func Error(c *fiber.Ctx, status int, message, errorCode string) error {
	body := fiber.Map{
		"success":   false,
		"data":      nil,
		"message":   message,
		"timestamp": time.Now().UTC(),
	}
	if errorCode != "" {
		body["errorCode"] = errorCode
	}
	return c.Status(status).JSON(body)
}

func ErrorWithData(c *fiber.Ctx, status int, message, errorCode string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success":   false,
		"data":      data,
		"message":   message,
		"timestamp": time.Now().UTC(),
		"errorCode": errorCode,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message, "VALIDATION_ERROR")
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message, "NOT_FOUND")
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message, "SERVER_ERROR")
}
