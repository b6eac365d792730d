package usecases

import (
	"errors"
	"fmt"
	"taskboard-server/auth"
	"taskboard-server/entities"
	"taskboard-server/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserUseCase is the credential store: it owns registration, password
// verification and principal resolution behind verified tokens.
type UserUseCase struct {
	UserRepo repositories.UserRepository
	Tokens   *auth.TokenService
}

func NewUserUseCase(userRepo repositories.UserRepository, tokens *auth.TokenService) *UserUseCase {
	return &UserUseCase{
		UserRepo: userRepo,
		Tokens:   tokens,
	}
}

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"`
}

// Register creates a new account. The email must not be taken; the raw
// password is bcrypt-hashed and never stored.
func (uc *UserUseCase) Register(username, email, rawPassword string) (*AuthResult, error) {
	if _, err := uc.UserRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := uc.Tokens.Issue(user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Authenticate verifies email + password and issues a fresh token. Unknown
// email and wrong password are indistinguishable to the caller.
func (uc *UserUseCase) Authenticate(email, rawPassword string) (*AuthResult, error) {
	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// FindByClaims re-resolves the principal behind a verified token.
func (uc *UserUseCase) FindByClaims(username, email string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByClaims(username, email)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetByID fetches a user record; the password hash stays out of responses
// via the entity's json tags.
func (uc *UserUseCase) GetByID(id string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}
