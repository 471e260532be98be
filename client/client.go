package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/plieapp/plie/client/auth"
	"github.com/plieapp/plie/client/auth/transport"
	"github.com/plieapp/plie/schema"
)

// apiPrefix is the fixed path root every relative endpoint is normalized to.
const apiPrefix = "/api"

const defaultUserAgent = "plie-go"

// Client talks to the Plié backend. All endpoint groupings hang off it as
// services; every call goes through the same request helper and the bearer
// refresh-and-replay transport.
type Client struct {
	baseURL   string
	httpc     *http.Client
	jar       http.CookieJar
	session   *auth.Session
	logger    *logrus.Logger
	userAgent string

	Auth          *AuthService
	Users         *UsersService
	Groups        *GroupsService
	Halls         *HallsService
	Teachers      *TeachersService
	Students      *StudentsService
	Schedule      *ScheduleService
	Lessons       *LessonsService
	Notifications *NotificationsService
	Grades        *GradesService
	Transcript    *TranscriptService
	Admin         *AdminService
	Categories    *CategoriesService
	Subjects      *SubjectsService
}

// New creates a Client for the backend at baseURL. The session starts
// unauthenticated; a cold start can still recover via the refresh cookie
// when a persistent jar is supplied.
func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		session:   auth.NewSession(),
		logger:    discardLogger(),
		userAgent: defaultUserAgent,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.httpc == nil {
		jar := c.jar
		if jar == nil {
			jar, _ = cookiejar.New(nil)
		}
		rt := transport.New(c.session, transport.WithCookieJar(jar))
		c.httpc = &http.Client{Transport: rt}
	}
	c.session.SetRefreshFunc(c.refreshToken)

	c.Auth = &AuthService{client: c}
	c.Users = &UsersService{client: c}
	c.Groups = &GroupsService{client: c}
	c.Halls = &HallsService{client: c}
	c.Teachers = &TeachersService{client: c}
	c.Students = &StudentsService{client: c}
	c.Schedule = &ScheduleService{client: c}
	c.Lessons = &LessonsService{client: c}
	c.Notifications = &NotificationsService{client: c}
	c.Grades = &GradesService{client: c}
	c.Transcript = &TranscriptService{client: c}
	c.Admin = &AdminService{client: c}
	c.Categories = &CategoriesService{client: c}
	c.Subjects = &SubjectsService{client: c}
	return c, nil
}

// Session exposes the credential state for callers that need getToken /
// setToken semantics (tests, embedding applications).
func (c *Client) Session() *auth.Session {
	return c.session
}

// endpoint normalizes a relative path onto the fixed API prefix.
func (c *Client) endpoint(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != apiPrefix && !strings.HasPrefix(path, apiPrefix+"/") {
		path = apiPrefix + path
	}
	return c.baseURL + path
}

// refreshToken is the session's shared refresh operation: POST the refresh
// endpoint with cookies, read the new access token. Retry is disabled so a
// refresh rejected with 401 cannot recurse into another refresh.
func (c *Client) refreshToken(ctx context.Context) (string, error) {
	res, err := do[schema.RefreshResult](transport.WithoutRetry(ctx), c, http.MethodPost, "/auth/refresh", nil)
	if err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

// do issues one API call and decodes the JSON response into T. Non-2xx
// responses become *schema.APIError carrying the status and raw body; the
// 401 refresh-and-replay cycle happens below this, in the transport.
func do[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.logger.WithFields(logrus.Fields{"method": method, "path": path}).Debug("api request")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, schema.NewAPIError(resp.StatusCode, strings.TrimSpace(string(data)))
	}
	result := new(T)
	if len(data) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return result, nil
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
