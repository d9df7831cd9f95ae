package instructorController

import (
	"errors"

	"lms/builder"
	"lms/config"
	"lms/courseapi"
	"lms/database"
	"lms/draft"
	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// Drafts holds every open authoring session in memory. A draft lives until
// its build succeeds or the instructor discards it.
var Drafts = draft.NewStore()

// courseService picks the builder's backend: the remote catalog API when
// one is configured, the local database otherwise.
func courseService() courseapi.Service {
	if config.AppConfig.CatalogApiURL != "" {
		return courseapi.NewClient(config.AppConfig.CatalogApiURL, config.AppConfig.CatalogApiKey)
	}
	return courseapi.NewStore(database.Database.Db)
}

// getOwnedDraft loads the draft from the token param and checks ownership
func getOwnedDraft(c *fiber.Ctx) (*draft.Draft, error) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	d, ok := Drafts.Get(c.Params("token"))
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Draft not found!", nil)
	}
	if d.InstructorID != userId {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}
	return d, nil
}

// OpenDraft starts a new authoring session
func OpenDraft(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	d := Drafts.Open(userId)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Draft opened!", fiber.Map{
		"token": d.Token,
	})
}

// GetDraft returns the current form and curriculum tree
func GetDraft(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft fetched!", fiber.Map{
		"token":      d.Token,
		"form":       d.GetForm(),
		"curriculum": d.Snapshot(),
	})
}

// SetCourseForm saves the metadata tab of the wizard
func SetCourseForm(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedForm").(*draft.CourseForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Keep a staged thumbnail across metadata saves
	if reqData.ThumbnailFile == "" {
		reqData.ThumbnailFile = d.GetForm().ThumbnailFile
	}
	d.SetForm(*reqData)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details saved!", nil)
}

// UploadThumbnail stages a thumbnail file on the draft
func UploadThumbnail(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
	}
	d.SetThumbnail(path)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded!", fiber.Map{
		"path": path,
	})
}

// AddSection appends a section to the draft curriculum
func AddSection(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedSection").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section := d.AddSection(reqData.Name, reqData.Description)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section added!", section)
}

// UpdateSection updates a draft section by id
func UpdateSection(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedSection").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := d.UpdateSection(c.Params("sectionId"), reqData.Name, reqData.Description); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated!", nil)
}

// DeleteSection removes a section and everything under it
func DeleteSection(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	if err := d.DeleteSection(c.Params("sectionId")); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted!", nil)
}

// AddLesson appends a lesson to a draft section
func AddLesson(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		SectionID string       `json:"section_id"`
		Lesson    draft.Lesson `json:"lesson"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := d.AddLesson(reqData.SectionID, reqData.Lesson)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added!", lesson)
}

// UpdateLesson replaces a draft lesson by id
func UpdateLesson(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedLesson").(*draft.Lesson)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := d.UpdateLesson(c.Params("lessonId"), *reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated!", nil)
}

// DeleteLesson removes a draft lesson and its sub-entities
func DeleteLesson(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	if err := d.DeleteLesson(c.Params("lessonId")); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted!", nil)
}

// UploadLessonVideo stages a video file on a draft lesson
func UploadLessonVideo(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("video")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save video!", nil)
	}

	if err := d.SetLessonVideo(c.Params("lessonId"), path); err != nil {
		if errors.Is(err, draft.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to stage video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video uploaded!", fiber.Map{
		"path": path,
	})
}

// UploadLessonAttachment stages a downloadable file on a draft lesson
func UploadLessonAttachment(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Attachment file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save attachment!", nil)
	}

	name := c.FormValue("name")
	if name == "" {
		name = file.Filename
	}

	attachment, err := d.AddLessonAttachment(c.Params("lessonId"), draft.Attachment{
		Name:     name,
		FilePath: path,
		FileSize: file.Size,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attachment added!", attachment)
}

// BuildDraft materializes the draft through the course service and returns
// the full build report. The draft is discarded only on success.
func BuildDraft(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	b := builder.New(courseService())
	result := b.Build(c.Context(), d.InstructorID, d.GetForm(), d.Snapshot())

	switch result.Status {
	case builder.StatusInvalid:
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", result)
	case builder.StatusSuccess:
		Drafts.Discard(d.Token)
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created and submitted for review!", result)
	default:
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Course creation failed!", result)
	}
}

// DiscardDraft drops an authoring session without building
func DiscardDraft(c *fiber.Ctx) error {
	d, err := getOwnedDraft(c)
	if err != nil {
		return err
	}

	Drafts.Discard(d.Token)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft discarded!", nil)
}
