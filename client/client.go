// Package client is a typed API client for the course marketplace.
// Reads are cached per endpoint key so repeated callers share one
// result; mutations invalidate the related keys so the next read
// reflects the new state. Identity-scoped reads are refused outright
// when no bearer token is held.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"learnhub/models"
	"learnhub/storage"
	authValidator "learnhub/validators/auth"
	courseValidator "learnhub/validators/course"

	"github.com/go-resty/resty/v2"
)

// ErrNoCredential is returned for identity-scoped calls made while logged out
var ErrNoCredential = errors.New("client: not authenticated")

// APIError carries the server's error body
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Field      string `json:"field"`
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error %d: %s (field %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// AuthResponse is the signup/login payload
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type Client struct {
	http  *resty.Client
	mu    sync.RWMutex
	token string
	cache map[string][]byte
}

func New(baseURL string) *Client {
	return &Client{
		http:  resty.New().SetBaseURL(baseURL),
		cache: make(map[string][]byte),
	}
}

// Token returns the held bearer token, empty when logged out
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Logout drops the credential and every cached identity-scoped result
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.invalidateLocked("/api/auth/me")
	c.invalidateLocked("/api/enrollments")
	c.invalidateLocked("/api/users")
	c.invalidateLocked("/api/reports")
}

func (c *Client) invalidateLocked(prefix string) {
	for key := range c.cache {
		if strings.HasPrefix(key, prefix) {
			delete(c.cache, key)
		}
	}
}

func (c *Client) invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, prefix := range prefixes {
		c.invalidateLocked(prefix)
	}
}

func (c *Client) request() *resty.Request {
	req := c.http.R()
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func apiErr(resp *resty.Response) error {
	apiError := &APIError{StatusCode: resp.StatusCode()}
	if err := json.Unmarshal(resp.Body(), apiError); err != nil || apiError.Message == "" {
		apiError.Message = resp.Status()
	}
	return apiError
}

// getCached fetches key from the cache or the server and decodes into out
func (c *Client) getCached(key string, out interface{}) error {
	c.mu.RLock()
	body, ok := c.cache[key]
	c.mu.RUnlock()

	if !ok {
		resp, err := c.request().Get(key)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return apiErr(resp)
		}
		body = resp.Body()

		c.mu.Lock()
		c.cache[key] = body
		c.mu.Unlock()
	}

	return json.Unmarshal(body, out)
}

// Signup registers an account and holds the returned token
func (c *Client) Signup(name, email, password string) (*AuthResponse, error) {
	body := authValidator.SignupRequest{Name: name, Email: email, Password: password}
	return c.authenticate("/api/auth/signup", body)
}

// Login exchanges credentials for a token and holds it
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	body := authValidator.LoginRequest{Email: email, Password: password}
	return c.authenticate("/api/auth/login", body)
}

func (c *Client) authenticate(path string, body interface{}) (*AuthResponse, error) {
	resp, err := c.request().SetBody(body).Post(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}

	var auth AuthResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = auth.Token
	// A fresh identity means previously cached identity-scoped data is stale
	c.invalidateLocked("/api/auth/me")
	c.invalidateLocked("/api/enrollments")
	c.mu.Unlock()

	return &auth, nil
}

// Me returns the authenticated user's profile
func (c *Client) Me() (*models.User, error) {
	if c.Token() == "" {
		return nil, ErrNoCredential
	}
	var user models.User
	if err := c.getCached("/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Courses lists the catalog; empty filters are omitted from the query
func (c *Client) Courses(category, search string) ([]models.Course, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}
	key := "/api/courses"
	if encoded := query.Encode(); encoded != "" {
		key += "?" + encoded
	}

	var courses []models.Course
	if err := c.getCached(key, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course fetches one course by numeric id or slug
func (c *Client) Course(idOrSlug string) (*models.Course, error) {
	var course models.Course
	if err := c.getCached("/api/courses/"+idOrSlug, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a course with its lessons (admin)
func (c *Client) CreateCourse(req courseValidator.CreateCourseRequest) (*models.Course, error) {
	if c.Token() == "" {
		return nil, ErrNoCredential
	}
	resp, err := c.request().SetBody(req).Post("/api/courses")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}

	var course models.Course
	if err := json.Unmarshal(resp.Body(), &course); err != nil {
		return nil, err
	}
	c.invalidate("/api/courses", "/api/reports")
	return &course, nil
}

// UpdateCourse applies a partial update to a course (admin)
func (c *Client) UpdateCourse(id uint, req courseValidator.UpdateCourseRequest) (*models.Course, error) {
	if c.Token() == "" {
		return nil, ErrNoCredential
	}
	resp, err := c.request().SetBody(req).Put(fmt.Sprintf("/api/courses/%d", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}

	var course models.Course
	if err := json.Unmarshal(resp.Body(), &course); err != nil {
		return nil, err
	}
	c.invalidate("/api/courses")
	return &course, nil
}

// DeleteCourse removes a course (admin)
func (c *Client) DeleteCourse(id uint) error {
	if c.Token() == "" {
		return ErrNoCredential
	}
	resp, err := c.request().Delete(fmt.Sprintf("/api/courses/%d", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	c.invalidate("/api/courses", "/api/enrollments", "/api/reports")
	return nil
}

// Enroll enrolls the authenticated user in a course
func (c *Client) Enroll(courseID uint) (*models.Enrollment, error) {
	if c.Token() == "" {
		return nil, ErrNoCredential
	}
	resp, err := c.request().
		SetBody(map[string]uint{"courseId": courseID}).
		Post("/api/enroll")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}

	var enrollment models.Enrollment
	if err := json.Unmarshal(resp.Body(), &enrollment); err != nil {
		return nil, err
	}
	c.invalidate("/api/enrollments", fmt.Sprintf("/api/courses/%d", courseID))
	return &enrollment, nil
}

// MyEnrollments lists the authenticated user's enrollments
func (c *Client) MyEnrollments() ([]models.Enrollment, error) {
	if c.Token() == "" {
		return nil, ErrNoCredential
	}
	var enrollments []models.Enrollment
	if err := c.getCached("/api/enrollments/me", &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// UpdateProgress marks one lesson of an enrollment complete or not
func (c *Client) UpdateProgress(enrollmentID uint, lessonID int, completed bool) (*models.Enrollment, error) {
	if c.Token() == "" {
		return nil, ErrNoCredential
	}
	resp, err := c.request().
		SetBody(map[string]interface{}{"lessonId": lessonID, "completed": completed}).
		Put(fmt.Sprintf("/api/enrollments/%d/progress", enrollmentID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}

	var enrollment models.Enrollment
	if err := json.Unmarshal(resp.Body(), &enrollment); err != nil {
		return nil, err
	}
	c.invalidate("/api/enrollments")
	return &enrollment, nil
}

// Users lists every registered user (admin)
func (c *Client) Users() ([]models.User, error) {
	if c.Token() == "" {
		return nil, ErrNoCredential
	}
	var users []models.User
	if err := c.getCached("/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Reports returns the aggregate counts (admin)
func (c *Client) Reports() (*storage.Stats, error) {
	if c.Token() == "" {
		return nil, ErrNoCredential
	}
	var stats storage.Stats
	if err := c.getCached("/api/reports", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
