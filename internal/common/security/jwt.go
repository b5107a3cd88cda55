package security

import (
	"errors"
	"time"
	"waste_tracker/internal/common"
	"waste_tracker/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

func GenerateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(config.AppConfig.JWTExp).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// VerifyToken checks signature and expiry in one pass. Expiry is the only
// failure reported as ErrTokenExpired; everything else (bad signature,
// malformed payload, algorithm mismatch) collapses to ErrTokenInvalid.
func VerifyToken(tokenString string) (userID, role string, err error) {
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", "", common.ErrTokenExpired
		}
		return "", "", common.ErrTokenInvalid
	}

	claims := token.PrivateClaims()
	userID, uErr := GetUserIDFromClaims(claims)
	role, rErr := GetUserRoleFromClaims(claims)
	if uErr != nil || rErr != nil {
		return "", "", common.ErrTokenInvalid
	}
	return userID, role, nil
}

// Helper functions to extract claims, can be used in middleware or services
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetUserRoleFromClaims(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
