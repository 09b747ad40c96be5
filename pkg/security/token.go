package security

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

const (
	ROLE_TYPE_CLIENT = "cu"
)

// TokenClaims is the authenticated user context carried through a request.
type TokenClaims struct {
	Appid   string            `json:"appid"`
	AppName string            `json:"app_name"`
	User    string            `json:"user"`
	Fields  map[string]string `json:"fields"`
	jwt.StandardClaims
}

func NewTokenClaims(appid, appName, user, role string, expiresAt int64) TokenClaims {
	return TokenClaims{
		Appid:   appid,
		AppName: appName,
		User:    user,
		Fields: map[string]string{
			"role":      role,
			"role_type": ROLE_TYPE_CLIENT,
		},
		StandardClaims: jwt.StandardClaims{
			Subject:   user,
			ExpiresAt: expiresAt,
		},
	}
}

func (c TokenClaims) GetUser() string {
	return c.User
}

func (c TokenClaims) GetRole() string {
	return c.Fields["role"]
}

func (c TokenClaims) GetRoleType() string {
	if c.Fields["role_type"] == "" {
		return ROLE_TYPE_CLIENT
	}
	return c.Fields["role_type"]
}

func (c TokenClaims) IsAuthenticated() bool {
	return c.User != ""
}

func SignToken(secret string, claims TokenClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseToken(secret, token string) (*TokenClaims, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims.Fields == nil {
		claims.Fields = make(map[string]string)
	}
	return &claims, nil
}
