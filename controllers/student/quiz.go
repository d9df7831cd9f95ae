package studentController

import (
	"encoding/json"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type studentQuestion struct {
	ID      uint `json:"id"`
	Text    string `json:"text"`
	Options []struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	} `json:"options"`
}

// quizQuestionsForStudent loads a quiz without the correct-answer flags
func quizQuestionsForStudent(db *gorm.DB, lessonID uint) []studentQuestion {
	var questions []courseModels.QuizQuestion
	db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).
		Order("order_index asc").Find(&questions)

	out := make([]studentQuestion, len(questions))
	for i, q := range questions {
		var options []courseModels.QuizOption
		db.Where("question_id = ? AND is_deleted = ?", q.ID, false).
			Order("order_index asc").Find(&options)

		sq := studentQuestion{ID: q.ID, Text: q.Text}
		for _, opt := range options {
			sq.Options = append(sq.Options, struct {
				ID   uint   `json:"id"`
				Text string `json:"text"`
			}{ID: opt.ID, Text: opt.Text})
		}
		out[i] = sq
	}
	return out
}

// SubmitQuiz scores an attempt at a quiz lesson. A question counts as
// correct when the selected option set matches the correct set exactly.
func SubmitQuiz(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Answers []struct {
			QuestionID uint   `json:"question_id"`
			OptionIDs  []uint `json:"option_ids"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND type = ? AND is_deleted = ?",
		lessonID, courseModels.LessonTypeQuiz, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if _, err := activeEnrollment(db, userId, lesson.CourseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course first!", nil)
	}

	var questions []courseModels.QuizQuestion
	db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).Find(&questions)
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz has no questions!", nil)
	}

	answered := make(map[uint][]uint, len(reqData.Answers))
	for _, a := range reqData.Answers {
		answered[a.QuestionID] = a.OptionIDs
	}

	score := 0
	for _, q := range questions {
		var options []courseModels.QuizOption
		db.Where("question_id = ? AND is_deleted = ?", q.ID, false).Find(&options)

		correct := make(map[uint]bool)
		for _, opt := range options {
			if opt.IsCorrect {
				correct[opt.ID] = true
			}
		}

		selected := answered[q.ID]
		if len(selected) != len(correct) {
			continue
		}
		match := true
		for _, id := range selected {
			if !correct[id] {
				match = false
				break
			}
		}
		if match {
			score++
		}
	}

	var attemptCount int64
	db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userId, lesson.ID, false).
		Count(&attemptCount)

	selectedJSON, _ := json.Marshal(answered)
	attempt := courseModels.QuizAttempt{
		UserID:          userId,
		LessonID:        lesson.ID,
		SelectedOptions: selectedJSON,
		Score:           score,
		MaxScore:        len(questions),
		AttemptNumber:   int(attemptCount) + 1,
	}
	if err := db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"score":          score,
		"max_score":      len(questions),
		"attempt_number": attempt.AttemptNumber,
	})
}

// MyQuizAttempts lists the student's attempts on one quiz lesson
func MyQuizAttempts(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.
		Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userId, lessonID, false).
		Order("attempt_number desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
	})
}
