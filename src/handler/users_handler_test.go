package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"papertrader/src/model"
)

type mockUserStore struct {
	users     []model.User
	createErr error
	listErr   error
	created   *model.User
}

func (m *mockUserStore) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = user
	return nil
}

func (m *mockUserStore) FindAll(_ context.Context) ([]model.User, error) {
	return m.users, m.listErr
}

func TestCreateUserHandler_Success(t *testing.T) {
	store := &mockUserStore{}
	h := CreateUserHandler(store)

	body := `{"email":"alice@example.com","name":"Alice","user_id":"alice"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}
	if store.created == nil {
		t.Fatal("expected store.Create to be called")
	}
	assert.Equal(t, "alice@example.com", store.created.Email)
	assert.Equal(t, "Alice", store.created.Name)
	assert.Equal(t, "alice", store.created.UserID)
}

func TestCreateUserHandler_MissingFields(t *testing.T) {
	h := CreateUserHandler(&mockUserStore{})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"a@b.c"}`))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestCreateUserHandler_StoreError(t *testing.T) {
	h := CreateUserHandler(&mockUserStore{createErr: assert.AnError})

	body := `{"email":"alice@example.com","name":"Alice","user_id":"alice"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}

func TestListUsersHandler(t *testing.T) {
	store := &mockUserStore{users: []model.User{
		{ID: "u1", Email: "alice@example.com", Name: "Alice", UserID: "alice"},
		{ID: "u2", Email: "bob@example.com", Name: "Bob", UserID: "bob"},
	}}
	h := ListUsersHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var users []model.User
	if err := json.Unmarshal(rr.Body.Bytes(), &users); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	assert.Len(t, users, 2)
}

func TestListUsersHandler_StoreError(t *testing.T) {
	h := ListUsersHandler(&mockUserStore{listErr: assert.AnError})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}
