package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "memberhub_session"
const minSecretLen = 32

// DefaultSessionTTL はセッショントークンの有効期限
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionCookieName はセッションクッキー名
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes は文字列からトークン署名用のバイト列を生成する（最低32バイト）
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// CreateSessionToken はユーザーIDを subject に持つ署名付き JWT を生成する
func CreateSessionToken(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifySessionToken はトークンを検証しユーザーIDを返す
func VerifySessionToken(token string, secret []byte) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}
