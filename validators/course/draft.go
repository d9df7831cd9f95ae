package courseValidator

import (
	"strings"

	"lms/draft"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// SetCourseForm accepts the metadata tab of the authoring wizard. Full
// validation happens at build time; edits may be saved incomplete.
func SetCourseForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(draft.CourseForm)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedForm", reqData)
		return c.Next()
	}
}

// AddSection validates a new draft section
func AddSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Section name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Section name must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// UpdateSection validates a draft section update
func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Section name must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// AddLesson validates a new draft lesson together with its type payload
func AddLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID string       `json:"section_id"`
			Lesson    draft.Lesson `json:"lesson"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateLesson(&reqData.Lesson)
		if strings.TrimSpace(reqData.SectionID) == "" {
			errors["section_id"] = "Section id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates a replacement lesson payload
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(draft.Lesson)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateLesson(reqData)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// validateLesson enforces the one-payload-per-type invariant and the quiz
// and subtitle shape rules
func validateLesson(lesson *draft.Lesson) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(lesson.Title) == "" {
		errors["title"] = "Lesson title is required!"
	}

	switch lesson.Type {
	case courseModels.LessonTypeVideo:
		// video may arrive later as a file upload; nothing mandatory here
	case courseModels.LessonTypeText:
		if strings.TrimSpace(lesson.TextContent) == "" {
			errors["text_content"] = "Text content is required for text lessons!"
		}
	case courseModels.LessonTypeQuiz:
		if len(lesson.Questions) == 0 {
			errors["questions"] = "Quiz lessons need at least one question!"
		}
		for _, q := range lesson.Questions {
			if strings.TrimSpace(q.Text) == "" {
				errors["questions"] = "Every question needs text!"
				break
			}
			if len(q.Options) < 2 {
				errors["questions"] = "Every question needs at least two options!"
				break
			}
			correct := false
			for _, opt := range q.Options {
				if opt.IsCorrect {
					correct = true
					break
				}
			}
			if !correct {
				errors["questions"] = "Every question needs at least one correct option!"
				break
			}
		}
	default:
		errors["type"] = "Lesson type must be VIDEO, TEXT or QUIZ!"
	}

	defaults := 0
	for _, sub := range lesson.Subtitles {
		if strings.TrimSpace(sub.LanguageCode) == "" || strings.TrimSpace(sub.URL) == "" {
			errors["subtitles"] = "Subtitles need a language code and a URL!"
			break
		}
		if sub.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		errors["subtitles"] = "Only one subtitle can be the default!"
	}

	return errors
}

// CourseList validates catalog pagination parameters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
