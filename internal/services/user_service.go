package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/isandoval/staffdesk-be/internal/auth"
	"github.com/isandoval/staffdesk-be/internal/models"
)

// UserServiceProvider defines the interface for user account services.
type UserServiceProvider interface {
	CreateUser(ctx context.Context, username, email, password string) (models.User, error)
	Authenticate(ctx context.Context, email, username, password string) (models.User, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	users *mongo.Collection
}

// NewUserService creates a new UserService.
func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection("users")}
}

// CreateUser registers a new account. The password hash is computed fresh
// before persistence and the plaintext is never stored. A single existence
// query across both username and email guards against duplicates; the unique
// indexes catch the race where two signups pass the check concurrently.
func (s *UserService) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	err := s.users.FindOne(ctx, filter).Err()
	if err == nil {
		return models.User{}, ErrUserDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           bson.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUserDuplicate
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

// Authenticate resolves an account by email first, then by username, and
// verifies the password. Both an unresolved account and a failed password
// check return ErrInvalidCredentials so callers cannot tell which one failed.
func (s *UserService) Authenticate(ctx context.Context, email, username, password string) (models.User, error) {
	var user models.User
	found := false

	if email != "" {
		err := s.users.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&user)
		switch {
		case err == nil:
			found = true
		case !errors.Is(err, mongo.ErrNoDocuments):
			return models.User{}, fmt.Errorf("failed to look up user by email: %w", err)
		}
	}
	if !found && username != "" {
		err := s.users.FindOne(ctx, bson.M{"username": strings.TrimSpace(username)}).Decode(&user)
		switch {
		case err == nil:
			found = true
		case !errors.Is(err, mongo.ErrNoDocuments):
			return models.User{}, fmt.Errorf("failed to look up user by username: %w", err)
		}
	}

	if !found || !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
