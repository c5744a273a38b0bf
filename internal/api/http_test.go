package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, 5*time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a@x.com", req.Email)
		require.Equal(t, "secret1", req.Password)

		json.NewEncoder(w).Encode(Account{ID: "42", Email: req.Email, Username: "alice", CompletedSurvey: true})
	}))

	acct, err := c.Login(context.Background(), "a@x.com", []byte("secret1"))
	require.NoError(t, err)
	assert.Equal(t, &Account{ID: "42", Email: "a@x.com", Username: "alice", CompletedSurvey: true}, acct)
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
	}))

	_, err := c.Login(context.Background(), "a@x.com", []byte("wrong"))
	require.ErrorIs(t, err, ErrAuthRejected)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@x.com", []byte("secret1"))
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRegister_DuplicateAccount(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "account already exists"})
	}))

	_, err := c.Register(context.Background(), "alice", "a@x.com", []byte("secret1"))
	require.ErrorIs(t, err, ErrAuthRejected)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRegister_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(Account{ID: "7", Email: req.Email, Username: req.Username})
	}))

	acct, err := c.Register(context.Background(), "alice", "a@x.com", []byte("secret1"))
	require.NoError(t, err)
	assert.Equal(t, "alice", acct.Username)
	assert.False(t, acct.CompletedSurvey)
}

func TestCourses(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/courses", r.URL.Path)
		json.NewEncoder(w).Encode([]Course{{Name: "Calculus"}, {Name: "Differential Equations"}})
	}))

	courses, err := c.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Calculus", courses[0].Name)
}

func TestSaveSelectedCourses(t *testing.T) {
	var got saveCoursesRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/save_selected_courses", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	err := c.SaveSelectedCourses(context.Background(), "42", []string{"Calculus"})
	require.NoError(t, err)
	assert.Equal(t, saveCoursesRequest{UserID: "42", SelectedCourses: []string{"Calculus"}}, got)
}

func TestChat(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat", r.URL.Path)
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(chatResponse{Response: "echo: " + req.Message})
	}))

	reply, err := c.Chat(context.Background(), "42", "hello")
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", reply)
}

func TestDoJSON_MalformedResponseBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := c.Courses(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMapStatus_ServerFault(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
