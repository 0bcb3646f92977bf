package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"

	"papertrader/src/model"
)

type userStore interface {
	Create(ctx context.Context, user *model.User) error
	FindAll(ctx context.Context) ([]model.User, error)
}

type createUserPayload struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

// ListUsersHandler returns a handler that lists all registered users.
func ListUsersHandler(store userStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := store.FindAll(r.Context())
		if err != nil {
			logger.WithError(err).Error("failed to list users")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(users); err != nil {
			logger.WithError(err).Error("failed to encode users response")
		}
	}
}

// CreateUserHandler returns a handler that registers a new user.
func CreateUserHandler(store userStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createUserPayload
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&payload); err != nil {
			logger.WithError(err).Warn("invalid create user payload")
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		payload.Email = strings.TrimSpace(payload.Email)
		payload.Name = strings.TrimSpace(payload.Name)
		payload.UserID = strings.TrimSpace(payload.UserID)

		if payload.Email == "" || payload.Name == "" || payload.UserID == "" {
			http.Error(w, "email, name and user_id are required", http.StatusBadRequest)
			return
		}

		user := &model.User{
			Email:  payload.Email,
			Name:   payload.Name,
			UserID: payload.UserID,
		}

		if err := store.Create(r.Context(), user); err != nil {
			logger.WithField("user_id", payload.UserID).WithError(err).Error("failed to create user")
			http.Error(w, "Unable to create user", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logger.WithError(err).Error("failed to encode user response")
		}
	}
}
