package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"shipsy/internal/app/ds"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// ErrUserExists is returned when the username or email is already taken.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials covers unknown user and wrong password alike so
// the response does not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	user := &ds.User{}
	err := r.db.Where("username = ?", username).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetUserByID(userID int) (*ds.User, error) {
	user := &ds.User{}
	if err := r.db.First(user, userID).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterUser checks uniqueness and creates the account. The password is
// hashed by the model's BeforeCreate hook.
func (r *Repository) RegisterUser(user ds.User) (ds.User, error) {
	var count int64
	err := r.db.Model(&ds.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error
	if err != nil {
		return ds.User{}, err
	}
	if count > 0 {
		return ds.User{}, ErrUserExists
	}

	if user.Role == "" {
		user.Role = "user"
	}
	if err := r.db.Create(&user).Error; err != nil {
		return ds.User{}, err
	}

	user.Password = ""
	return user, nil
}

// LoginUser verifies the credentials, signs a JWT and stores it in Redis
// keyed by user so the middleware can reject revoked sessions.
func (r *Repository) LoginUser(username, password string) (string, error) {
	user, err := r.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &ds.JWTClaims{
		UserID: user.UserID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(r.jwtKey))
	if err != nil {
		return "", fmt.Errorf("jwt sign error: %w", err)
	}

	key := "jwt:" + strconv.Itoa(user.UserID)
	if err := r.redis.Set(context.Background(), key, tokenStr, tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return tokenStr, nil
}

// VerifyToken checks the JWT signature and that the token is still the
// active session in Redis. Implements the credential verifier used by the
// auth middleware.
func (r *Repository) VerifyToken(tokenStr string) (*ds.JWTClaims, error) {
	claims := &ds.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(r.jwtKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	key := "jwt:" + strconv.Itoa(claims.UserID)
	stored, err := r.redis.Get(context.Background(), key).Result()
	if err != nil || stored != tokenStr {
		return nil, errors.New("session expired")
	}

	return claims, nil
}

// LogoutUser drops the active session from Redis.
func (r *Repository) LogoutUser(userID int) error {
	key := "jwt:" + strconv.Itoa(userID)
	return r.redis.Del(context.Background(), key).Err()
}

// UpdateUser applies profile changes. Zero-valued fields are skipped by
// gorm, so absent JSON fields keep their stored values.
func (r *Repository) UpdateUser(user ds.User) error {
	return r.db.Model(&ds.User{}).Where("user_id = ?", user.UserID).Updates(user).Error
}
