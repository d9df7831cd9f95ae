package courseValidator

import (
	"testing"

	"lms/draft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() draft.CourseForm {
	return draft.CourseForm{
		Title:           "Learn Go From Scratch",
		CategoryID:      1,
		LevelID:         2,
		Language:        "en",
		OriginalPrice:   "499000",
		DiscountedPrice: "299000",
	}
}

func TestValidateCourseFormHappyPath(t *testing.T) {
	payload, fieldErrors := ValidateCourseForm(validForm())

	require.Nil(t, fieldErrors)
	require.NotNil(t, payload)
	assert.Equal(t, "Learn Go From Scratch", payload.Title)
	assert.Equal(t, "learn-go-from-scratch", payload.Slug)
	assert.Equal(t, 499000.0, payload.OriginalPrice)
	assert.Equal(t, 299000.0, payload.DiscountedPrice)
}

func TestValidateCourseFormRequiredFields(t *testing.T) {
	payload, fieldErrors := ValidateCourseForm(draft.CourseForm{})

	assert.Nil(t, payload)
	require.NotNil(t, fieldErrors)
	assert.Contains(t, fieldErrors, "title")
	assert.Contains(t, fieldErrors, "category_id")
	assert.Contains(t, fieldErrors, "level_id")
	assert.Contains(t, fieldErrors, "language")
}

func TestValidateCourseFormTitleTooShort(t *testing.T) {
	form := validForm()
	form.Title = "Go"

	payload, fieldErrors := ValidateCourseForm(form)

	assert.Nil(t, payload)
	require.NotNil(t, fieldErrors)
	assert.Contains(t, fieldErrors, "title")
}

func TestValidateCourseFormEmptyPricesCoerceToZero(t *testing.T) {
	form := validForm()
	form.OriginalPrice = ""
	form.DiscountedPrice = ""

	payload, fieldErrors := ValidateCourseForm(form)

	require.Nil(t, fieldErrors)
	assert.Equal(t, 0.0, payload.OriginalPrice)
	assert.Equal(t, 0.0, payload.DiscountedPrice)
}

func TestValidateCourseFormNonNumericPrice(t *testing.T) {
	form := validForm()
	form.OriginalPrice = "free"

	payload, fieldErrors := ValidateCourseForm(form)

	assert.Nil(t, payload)
	require.NotNil(t, fieldErrors)
	assert.Equal(t, "Must be a number!", fieldErrors["original_price"])
}

func TestValidateCourseFormNegativePrice(t *testing.T) {
	form := validForm()
	form.DiscountedPrice = "-10"

	payload, fieldErrors := ValidateCourseForm(form)

	assert.Nil(t, payload)
	require.NotNil(t, fieldErrors)
	assert.Equal(t, "Cannot be negative!", fieldErrors["discounted_price"])
}

func TestValidateCourseFormDiscountAboveOriginal(t *testing.T) {
	form := validForm()
	form.OriginalPrice = "100"
	form.DiscountedPrice = "150"

	payload, fieldErrors := ValidateCourseForm(form)

	assert.Nil(t, payload)
	require.NotNil(t, fieldErrors)
	assert.Equal(t, "Discounted price cannot exceed the original price!", fieldErrors["discounted_price"])
}

func TestValidateCourseFormDiscountEqualToOriginal(t *testing.T) {
	form := validForm()
	form.OriginalPrice = "100"
	form.DiscountedPrice = "100"

	payload, fieldErrors := ValidateCourseForm(form)

	require.Nil(t, fieldErrors)
	require.NotNil(t, payload)
	assert.Equal(t, 100.0, payload.DiscountedPrice)
}
