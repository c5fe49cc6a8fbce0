package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenClaims is the identity payload shared by every service. Any service
// holding the signing secret can mint or verify these tokens.
type TokenClaims struct {
	UserID   int64
	Email    string
	FullName string
	Role     string
	UID      string
}

func CreateJWTToken(userID int64, email string, fullName string, role string, uid string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["email"] = email
	claims["name"] = fullName
	claims["role"] = role
	claims["uid"] = uid
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

func ParseJWTToken(tokenString string, jwtSecretKey string) (res TokenClaims, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return res, errors.New("invalid token")
	}

	if userID, ok := claims["userID"].(float64); ok {
		res.UserID = int64(userID)
	}
	if email, ok := claims["email"].(string); ok {
		res.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		res.FullName = name
	}
	if role, ok := claims["role"].(string); ok {
		res.Role = role
	}
	if uid, ok := claims["uid"].(string); ok {
		res.UID = uid
	}

	return
}
