package courseValidator

import (
	"reflect"
	"strconv"
	"strings"

	"lms/courseapi"
	"lms/draft"
	"lms/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names for errors instead of Go struct names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// formRules carries the declarative checks on required metadata fields
type formRules struct {
	Title      string `json:"title" validate:"required,min=3,max=200"`
	CategoryID uint   `json:"category_id" validate:"required"`
	LevelID    uint   `json:"level_id" validate:"required"`
	Language   string `json:"language" validate:"required"`
}

// ValidateCourseForm checks instructor-entered course metadata and returns
// either a coerced payload ready for the course service or a field-keyed
// map of validation errors. Pure function: no side effects, no network.
func ValidateCourseForm(form draft.CourseForm) (*courseapi.CoursePayload, map[string]string) {
	errors := make(map[string]string)

	rules := formRules{
		Title:      strings.TrimSpace(form.Title),
		CategoryID: form.CategoryID,
		LevelID:    form.LevelID,
		Language:   strings.TrimSpace(form.Language),
	}
	if err := validate.Struct(rules); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Tag() {
			case "required":
				errors[fe.Field()] = "This field is required!"
			case "min":
				errors[fe.Field()] = "Must be at least " + fe.Param() + " characters long!"
			case "max":
				errors[fe.Field()] = "Must be at most " + fe.Param() + " characters long!"
			default:
				errors[fe.Field()] = "Invalid value!"
			}
		}
	}

	originalPrice := coercePrice("original_price", form.OriginalPrice, errors)
	discountedPrice := coercePrice("discounted_price", form.DiscountedPrice, errors)

	// A discount may not exceed what the course costs
	if errors["original_price"] == "" && errors["discounted_price"] == "" &&
		discountedPrice > originalPrice {
		errors["discounted_price"] = "Discounted price cannot exceed the original price!"
	}

	if len(errors) > 0 {
		return nil, errors
	}

	return &courseapi.CoursePayload{
		Title:            rules.Title,
		Slug:             utils.Slugify(rules.Title),
		ShortDescription: form.ShortDescription,
		Description:      form.Description,
		CategoryID:       form.CategoryID,
		LevelID:          form.LevelID,
		Language:         rules.Language,
		OriginalPrice:    originalPrice,
		DiscountedPrice:  discountedPrice,
		Requirements:     form.Requirements,
		Outcomes:         form.Outcomes,
		IntroVideoURL:    form.IntroVideoURL,
	}, nil
}

// coercePrice converts a form price string to a number. Empty means unset
// and coerces to zero.
func coercePrice(field, raw string, errors map[string]string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errors[field] = "Must be a number!"
		return 0
	}
	if value < 0 {
		errors[field] = "Cannot be negative!"
		return 0
	}
	return value
}
