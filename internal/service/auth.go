package service

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/errors"
	"github.com/suraksha-dev/suraksha/shared/logger"
)

// to mock service in tests
type AuthService interface {
	Signup(creds domain.Credentials) (domain.User, string, error)
	Login(creds domain.Credentials) (domain.User, string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) error
	User(email string) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage, jwt}
}

// Signup creates the account and logs it in immediately. There is no
// email confirmation round: accounts live only for the process
// lifetime.
func (a *Auth) Signup(creds domain.Credentials) (domain.User, string, error) {
	email := strings.ToLower(creds.Email)

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user := domain.User{
		Id:           uuid.NewString(),
		Email:        email,
		Name:         creds.Name,
		PasswordHash: string(passHash),
	}
	if err := a.storage.SaveUser(user); err != nil {
		return domain.User{}, "", err
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (a *Auth) Login(creds domain.Credentials) (domain.User, string, error) {
	email := strings.ToLower(creds.Email)

	user, err := a.storage.User(email)
	if err != nil {
		// to not leak existing users
		if errors.IsNotFound(err) {
			return domain.User{}, "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return domain.User{}, "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}
	return user, token, nil
}
