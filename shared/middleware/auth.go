package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	shared_jwt "github.com/suraksha-dev/suraksha/shared/jwt"
	"github.com/suraksha-dev/suraksha/shared/domain"
	"github.com/suraksha-dev/suraksha/shared/utils"
)

// Key to store the user claims in the request context
type contextKey int

const UserClaimsKey contextKey = 0

const AccessTokenCookie = "accessToken"

func Auth(jwtService shared_jwt.JwtService, adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessCookie, err := r.Cookie(AccessTokenCookie)
			if err == http.ErrNoCookie {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			} else if err != nil {
				http.Error(w, "Invalid cookie", http.StatusInternalServerError)
				return
			}

			token, err := jwtService.DecodeToken(accessCookie.Value)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			uid, _ := claims["uid"].(string)
			name, _ := claims["name"].(string)
			admin, _ := claims["admin"].(bool)
			if uid == "" {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			if adminOnly && !admin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			user := &domain.User{Id: uid, Name: name, Admin: admin}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminOnly(jwtService shared_jwt.JwtService) func(http.Handler) http.Handler {
	return Auth(jwtService, true)
}

func NeedAuth(jwtService shared_jwt.JwtService) func(http.Handler) http.Handler {
	return Auth(jwtService, false)
}

// GetUserFromContext retrieves the authenticated user, or nil.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
