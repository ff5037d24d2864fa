package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/isandoval/staffdesk-be/internal/auth"
	"github.com/isandoval/staffdesk-be/internal/models"
	"github.com/isandoval/staffdesk-be/internal/services"
)

// mockUserService implements services.UserServiceProvider for unit tests.
type mockUserService struct {
	createFn func(ctx context.Context, username, email, password string) (models.User, error)
	authFn   func(ctx context.Context, email, username, password string) (models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	return m.createFn(ctx, username, email, password)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, username, password string) (models.User, error) {
	return m.authFn(ctx, email, username, password)
}

func newUserHandler(svc services.UserServiceProvider) *UserHandler {
	return NewUserHandler(svc, auth.NewManager("test-secret"))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignup_Success(t *testing.T) {
	created := models.User{ID: bson.NewObjectID(), Username: "alice", Email: "a@x.com"}
	svc := &mockUserService{
		createFn: func(_ context.Context, username, email, password string) (models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "a@x.com", email)
			assert.Equal(t, "secret1", password)
			return created, nil
		},
	}

	rec := postJSON(t, newUserHandler(svc).Signup, "/api/v1/user/signup",
		`{"username":"alice","email":"a@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User created successfully.", body["message"])
	assert.Equal(t, created.ID.Hex(), body["user_id"])
}

func TestSignup_ValidationFailures(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			t.Fatal("service must not be called on validation failure")
			return models.User{}, nil
		},
	}
	h := newUserHandler(svc)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing username", `{"email":"a@x.com","password":"secret1"}`, "username is required"},
		{"bad email", `{"username":"alice","email":"nope","password":"secret1"}`, "valid email is required"},
		{"short password", `{"username":"alice","email":"a@x.com","password":"abc"}`, "password must be at least 6 chars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Signup, "/api/v1/user/signup", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"status":false,"message":"`+tt.message+`"}`, rec.Body.String())
		})
	}
}

func TestSignup_Duplicate(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, services.ErrUserDuplicate
		},
	}

	rec := postJSON(t, newUserHandler(svc).Signup, "/api/v1/user/signup",
		`{"username":"bob","email":"a@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Username or email already exists."}`, rec.Body.String())
}

func TestLogin_Success(t *testing.T) {
	user := models.User{ID: bson.NewObjectID(), Username: "alice", Email: "a@x.com"}
	svc := &mockUserService{
		authFn: func(_ context.Context, email, username, password string) (models.User, error) {
			assert.Equal(t, "a@x.com", email)
			assert.Equal(t, "secret1", password)
			return user, nil
		},
	}

	h := newUserHandler(svc)
	rec := postJSON(t, h.Login, "/api/v1/user/login", `{"email":"a@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful.", body["message"])

	claims, err := auth.NewManager("test-secret").VerifyToken(body["jwt_token"])
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.Subject)
}

func TestLogin_FailureBranchesAreIdentical(t *testing.T) {
	svc := &mockUserService{
		authFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, services.ErrInvalidCredentials
		},
	}
	h := newUserHandler(svc)

	unknown := postJSON(t, h.Login, "/api/v1/user/login", `{"email":"ghost@x.com","password":"secret1"}`)
	badPass := postJSON(t, h.Login, "/api/v1/user/login", `{"email":"a@x.com","password":"wrong1"}`)

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, badPass.Code)
	assert.Equal(t, unknown.Body.Bytes(), badPass.Body.Bytes())
	assert.JSONEq(t, `{"status":false,"message":"Invalid Username and password"}`, unknown.Body.String())
}

func TestLogin_RequiresEmailOrUsername(t *testing.T) {
	svc := &mockUserService{
		authFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			t.Fatal("service must not be called on validation failure")
			return models.User{}, nil
		},
	}

	rec := postJSON(t, newUserHandler(svc).Login, "/api/v1/user/login", `{"password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"email or username is required"}`, rec.Body.String())
}

func TestLogin_UsernameOnly(t *testing.T) {
	user := models.User{ID: bson.NewObjectID(), Username: "alice", Email: "a@x.com"}
	svc := &mockUserService{
		authFn: func(_ context.Context, email, username, password string) (models.User, error) {
			assert.Empty(t, email)
			assert.Equal(t, "alice", username)
			return user, nil
		},
	}

	rec := postJSON(t, newUserHandler(svc).Login, "/api/v1/user/login",
		`{"username":"alice","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
}
