package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves canned marketplace responses and counts GET hits per path
type fakeAPI struct {
	hits map[string]*int64
}

func newFakeAPI() (*fakeAPI, *httptest.Server) {
	api := &fakeAPI{hits: map[string]*int64{}}

	mux := http.NewServeMux()
	count := func(path string) {
		if api.hits[path] == nil {
			api.hits[path] = new(int64)
		}
		atomic.AddInt64(api.hits[path], 1)
	}

	mux.HandleFunc("/api/courses", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			count("/api/courses")
			json.NewEncoder(w).Encode([]models.Course{{ID: 1, Title: "Go Basics", Slug: "go-basics"}})
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Course{ID: 2, Title: "New", Slug: "new"})
		}
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-1",
			"user":  models.User{ID: 1, Email: body.Email, Role: models.RoleUser},
		})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		count("/api/auth/me")
		json.NewEncoder(w).Encode(models.User{ID: 1, Email: "alice@example.com", Role: models.RoleUser})
	})
	mux.HandleFunc("/api/enrollments/me", func(w http.ResponseWriter, r *http.Request) {
		count("/api/enrollments/me")
		json.NewEncoder(w).Encode([]models.Enrollment{})
	})
	mux.HandleFunc("/api/enroll", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Enrollment{ID: 1, UserID: 1, CourseID: 1})
	})

	return api, httptest.NewServer(mux)
}

func (f *fakeAPI) hitCount(path string) int64 {
	if f.hits[path] == nil {
		return 0
	}
	return atomic.LoadInt64(f.hits[path])
}

func TestCoursesAreCachedPerKey(t *testing.T) {
	api, server := newFakeAPI()
	defer server.Close()

	c := New(server.URL)

	first, err := c.Courses("", "")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second read is served from the cache
	second, err := c.Courses("", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, api.hitCount("/api/courses"))
}

func TestIdentityScopedCallsRequireCredential(t *testing.T) {
	_, server := newFakeAPI()
	defer server.Close()

	c := New(server.URL)

	_, err := c.Me()
	assert.ErrorIs(t, err, ErrNoCredential)
	_, err = c.MyEnrollments()
	assert.ErrorIs(t, err, ErrNoCredential)
	_, err = c.Enroll(1)
	assert.ErrorIs(t, err, ErrNoCredential)
	_, err = c.Users()
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestLoginHoldsToken(t *testing.T) {
	_, server := newFakeAPI()
	defer server.Close()

	c := New(server.URL)

	auth, err := c.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", auth.Token)
	assert.Equal(t, "tok-1", c.Token())

	_, err = c.Me()
	assert.NoError(t, err)
}

func TestLoginFailureSurfacesAPIError(t *testing.T) {
	_, server := newFakeAPI()
	defer server.Close()

	c := New(server.URL)

	_, err := c.Login("alice@example.com", "wrong")
	require.Error(t, err)

	var apiError *APIError
	require.ErrorAs(t, err, &apiError)
	assert.Equal(t, http.StatusUnauthorized, apiError.StatusCode)
	assert.Equal(t, "Invalid credentials", apiError.Message)
	assert.Empty(t, c.Token())
}

func TestEnrollInvalidatesEnrollments(t *testing.T) {
	api, server := newFakeAPI()
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login("alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = c.MyEnrollments()
	require.NoError(t, err)
	_, err = c.MyEnrollments()
	require.NoError(t, err)
	assert.EqualValues(t, 1, api.hitCount("/api/enrollments/me"))

	// A successful mutation drops the cached key
	_, err = c.Enroll(1)
	require.NoError(t, err)

	_, err = c.MyEnrollments()
	require.NoError(t, err)
	assert.EqualValues(t, 2, api.hitCount("/api/enrollments/me"))
}

func TestLogoutDropsIdentityCache(t *testing.T) {
	api, server := newFakeAPI()
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login("alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = c.Me()
	require.NoError(t, err)

	c.Logout()
	assert.Empty(t, c.Token())

	_, err = c.Me()
	assert.ErrorIs(t, err, ErrNoCredential)

	// Catalog cache survives logout
	_, err = c.Courses("", "")
	require.NoError(t, err)
	_, err = c.Courses("", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, api.hitCount("/api/courses"))
}
