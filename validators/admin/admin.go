package adminValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// Rejection covers both course review and certificate request rejections
func Rejection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Reason = strings.TrimSpace(reqData.Reason)
		if reqData.Reason == "" {
			errors["reason"] = "A rejection reason is required!"
		} else if len(reqData.Reason) > 1000 {
			errors["reason"] = "Reason cannot exceed 1000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRejection", reqData)
		return c.Next()
	}
}

func CompletePayout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Notes string `json:"notes"`
		})

		// Body is optional here, notes default to empty
		if err := c.BodyParser(reqData); err != nil {
			reqData.Notes = ""
		}

		if len(reqData.Notes) > 1000 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"notes": "Notes cannot exceed 1000 characters!",
			})
		}

		c.Locals("validatedPayout", reqData)
		return c.Next()
	}
}
