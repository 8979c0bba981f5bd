package auth

import (
	"errors"
	"fmt"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid token")

type JwtCustomClaim struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
	jwt.StandardClaims
}

// JWTIssuer signs HS256 tokens carrying the user id and role.
type JWTIssuer struct {
	secret   []byte
	lifespan time.Duration
	now      func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, lifespanHours int) *JWTIssuer {
	if lifespanHours <= 0 {
		lifespanHours = 24
	}
	return &JWTIssuer{
		secret:   []byte(secret),
		lifespan: time.Duration(lifespanHours) * time.Hour,
		now:      time.Now,
	}
}

func (j *JWTIssuer) Issue(u entities.User) (string, error) {
	now := j.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &JwtCustomClaim{
		ID:   u.ID,
		Role: string(u.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(j.lifespan).Unix(),
			IssuedAt:  now.Unix(),
		},
	})
	return t.SignedString(j.secret)
}

func (j *JWTIssuer) Parse(token string) (interfaces.TokenClaims, error) {
	claims := &JwtCustomClaim{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid || claims.ID <= 0 {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	return interfaces.TokenClaims{UserID: claims.ID, Role: entities.Role(claims.Role)}, nil
}
