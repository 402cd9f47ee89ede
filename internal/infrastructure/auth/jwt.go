package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/shared/biztime"
)

// Claims carries the session payload. Only the user ID goes into the token;
// role and email are resolved from the store on every request so role changes
// take effect without reissuing cookies.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

type SessionTokenService struct {
	secret   []byte
	expHours int
}

func NewSessionTokenService(secret string, expHours int) *SessionTokenService {
	return &SessionTokenService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

func (s *SessionTokenService) Generate(userID uint) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *SessionTokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ExpSeconds returns the session lifetime in seconds, for cookie max-age.
func (s *SessionTokenService) ExpSeconds() int {
	return s.expHours * 3600
}
