package userValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Mobile   string `json:"mobile"`
			Headline string `json:"headline"`
			Bio      string `json:"bio"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name != "" && len(reqData.Name) < 2 {
			errors["name"] = "Name must be at least 2 characters!"
		}
		if len(reqData.Headline) > 120 {
			errors["headline"] = "Headline cannot exceed 120 characters!"
		}
		if len(reqData.Bio) > 5000 {
			errors["bio"] = "Bio cannot exceed 5000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
