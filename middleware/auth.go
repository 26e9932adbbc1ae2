package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"ses/models"
	"ses/store"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	profileContextKey contextKey = "profile"
	roleContextKey    contextKey = "role"
)

type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.RoleSlug `json:"role"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateToken(profile *models.Profile, role models.RoleSlug, expiration time.Duration) (string, error) {
	email := ""
	if profile.Email != nil {
		email = *profile.Email
	}
	claims := &Claims{
		UserID: profile.ID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// Auth validates the request token and loads the caller's profile and role
// slug into the request context. The token is read from the "token" cookie
// first, then from a bearer Authorization header.
func Auth(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenString string
			if cookie, err := r.Cookie("token"); err == nil {
				tokenString = cookie.Value
			}
			if tokenString == "" {
				authHeader := r.Header.Get("Authorization")
				if authHeader != "" {
					parts := strings.Split(authHeader, " ")
					if len(parts) == 2 && parts[0] == "Bearer" {
						tokenString = parts[1]
					}
				}
			}

			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			profile, err := st.ProfileByID(claims.UserID)
			if err != nil || profile == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			role, err := st.RoleSlugByID(profile.RoleID)
			if err != nil || role == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), profileContextKey, profile)
			ctx = context.WithValue(ctx, roleContextKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group to callers whose role slug is in the
// allowed set.
func RequireRole(roles ...models.RoleSlug) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if role.Is(roles...) {
				next.ServeHTTP(w, r)
				return
			}

			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}

func ProfileFromContext(ctx context.Context) *models.Profile {
	profile, ok := ctx.Value(profileContextKey).(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}

func RoleFromContext(ctx context.Context) (models.RoleSlug, bool) {
	role, ok := ctx.Value(roleContextKey).(models.RoleSlug)
	return role, ok
}
