package jwt

import (
	"FlowHub/config"
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 会话令牌，Subject 即身份提供方的用户 ID
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier 校验身份提供方签发的会话令牌
type Verifier struct {
	secret    []byte
	publicKey *rsa.PublicKey
	issuer    string
}

func NewVerifier(conf *config.Config) (*Verifier, error) {
	v := &Verifier{secret: []byte(conf.Jwt.Secret), issuer: conf.Jwt.Issuer}
	if conf.Jwt.PublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(conf.Jwt.PublicKey))
		if err != nil {
			return nil, err
		}
		v.publicKey = key
	}
	if v.publicKey == nil && len(v.secret) == 0 {
		return nil, errors.New("jwt secret or public key required")
	}
	return v, nil
}

func (v *Verifier) ParseToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if v.publicKey != nil {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return v.publicKey, nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Subject == "" {
		return nil, errors.New("token subject is empty")
	}
	return claims, nil
}

// GenerateToken 签发 HS256 令牌，用于本地开发和测试
func GenerateToken(secret []byte, subject, email string, expire time.Duration) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
