package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, 6)
	assert.Regexp(t, `^\d{6}$`, otp)
}

func TestRandomStringLength(t *testing.T) {
	assert.Len(t, RandomString(8), 8)
	assert.Regexp(t, `^[a-z0-9]+$`, RandomString(12))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "learn-go-from-scratch", Slugify("Learn Go From Scratch"))
	assert.Equal(t, "c-programming-2024", Slugify("  C++ Programming (2024)!  "))
	assert.Equal(t, "tieng-viet", Slugify("tieng--viet"))
}

func TestSlugifyEmptyTitleGetsFallback(t *testing.T) {
	slug := Slugify("!!!")
	assert.Regexp(t, `^course-[a-z0-9]{6}$`, slug)
}
