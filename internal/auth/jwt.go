package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/interview-hub/interview-hub/internal/apperrors"
	"github.com/interview-hub/interview-hub/internal/models"
)

var (
	jwtSecret     []byte
	jwtExpiration = time.Hour * 24
)

func InitJWT(secret string, expiration time.Duration) {
	jwtSecret = []byte(secret)
	jwtExpiration = expiration
}

// GenerateToken signs an HS256 token carrying the user's identity and account
// summary. Claims are only as fresh as issuance time; role changes take effect
// on the next login.
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(jwtExpiration).Unix(),
	}

	if user.Account != nil {
		claims["accounts"] = map[string]interface{}{
			"id":          user.Account.ID,
			"accountType": user.Account.AccountType,
			"department":  user.Account.Department,
			"position":    user.Account.Position,
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// VerifyToken checks the signature and expiry and returns the claims. Database
// state is not consulted here.
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
