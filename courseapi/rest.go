package courseapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to a remote catalog API over HTTP. Responses use the same
// JSON envelope this service emits: {"status": bool, "message": string,
// "data": {...}}.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, apiKey string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	if apiKey != "" {
		c.SetHeader("Authorization", "Bearer "+apiKey)
	}
	return &Client{http: c}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call issues a request and decodes the envelope's data into out (if any)
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("catalog api unreachable: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("catalog api returned invalid response (%d)", resp.StatusCode())
	}
	if resp.IsError() || !env.Status {
		msg := env.Message
		if msg == "" {
			msg = resp.Status()
		}
		return fmt.Errorf("catalog api: %s", msg)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("catalog api returned unexpected payload: %v", err)
		}
	}
	return nil
}

// upload sends a local file as multipart form data and returns the stored URL
func (c *Client) upload(ctx context.Context, path, field, filePath string) (string, error) {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetFile(field, filePath).
		SetResult(&env).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("catalog api unreachable: %v", err)
	}
	if resp.IsError() || !env.Status {
		msg := env.Message
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("catalog api: %s", msg)
	}

	var out struct {
		URL string `json:"url"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return "", fmt.Errorf("catalog api returned unexpected payload: %v", err)
		}
	}
	return out.URL, nil
}

func (c *Client) CreateCourse(ctx context.Context, payload CoursePayload) (*Created, error) {
	var created Created
	if err := c.call(ctx, resty.MethodPost, "/courses", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UploadThumbnail(ctx context.Context, courseID uint, filePath string) (string, error) {
	return c.upload(ctx, fmt.Sprintf("/courses/%d/thumbnail", courseID), "thumbnail", filePath)
}

func (c *Client) CreateSection(ctx context.Context, courseID uint, payload SectionPayload) (*Created, error) {
	var created Created
	if err := c.call(ctx, resty.MethodPost, fmt.Sprintf("/courses/%d/sections", courseID), payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreateLesson(ctx context.Context, courseID, sectionID uint, payload LessonPayload) (*Created, error) {
	var created Created
	path := fmt.Sprintf("/courses/%d/sections/%d/lessons", courseID, sectionID)
	if err := c.call(ctx, resty.MethodPost, path, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UploadLessonVideo(ctx context.Context, lessonID uint, filePath string) (string, error) {
	return c.upload(ctx, fmt.Sprintf("/lessons/%d/video", lessonID), "video", filePath)
}

func (c *Client) CreateQuizQuestion(ctx context.Context, lessonID uint, payload QuestionPayload) (*Created, error) {
	var created Created
	if err := c.call(ctx, resty.MethodPost, fmt.Sprintf("/lessons/%d/questions", lessonID), payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) AddAttachment(ctx context.Context, lessonID uint, payload AttachmentPayload) (*Created, error) {
	var created Created
	resp, err := c.http.R().
		SetContext(ctx).
		SetFile("file", payload.FilePath).
		SetFormData(map[string]string{"name": payload.Name}).
		Post(fmt.Sprintf("/lessons/%d/attachments", lessonID))
	if err != nil {
		return nil, fmt.Errorf("catalog api unreachable: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("catalog api returned invalid response (%d)", resp.StatusCode())
	}
	if resp.IsError() || !env.Status {
		msg := env.Message
		if msg == "" {
			msg = resp.Status()
		}
		return nil, fmt.Errorf("catalog api: %s", msg)
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return nil, fmt.Errorf("catalog api returned unexpected payload: %v", err)
	}
	return &created, nil
}

func (c *Client) AddSubtitle(ctx context.Context, lessonID uint, payload SubtitlePayload) (*Created, error) {
	var created Created
	if err := c.call(ctx, resty.MethodPost, fmt.Sprintf("/lessons/%d/subtitles", lessonID), payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteCourse(ctx context.Context, courseID uint) error {
	return c.call(ctx, resty.MethodDelete, fmt.Sprintf("/courses/%d", courseID), nil, nil)
}

func (c *Client) DeleteSection(ctx context.Context, sectionID uint) error {
	return c.call(ctx, resty.MethodDelete, fmt.Sprintf("/sections/%d", sectionID), nil, nil)
}

func (c *Client) DeleteLesson(ctx context.Context, lessonID uint) error {
	return c.call(ctx, resty.MethodDelete, fmt.Sprintf("/lessons/%d", lessonID), nil, nil)
}

func (c *Client) DeleteQuizQuestion(ctx context.Context, questionID uint) error {
	return c.call(ctx, resty.MethodDelete, fmt.Sprintf("/questions/%d", questionID), nil, nil)
}
