package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"storefront/internal/entities"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type ctxKey struct{}

// Claims полезная нагрузка токена. Subject — id пользователя,
// роль и данные профиля дублируются чтобы не ходить в базу на каждый запрос.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Tokenizer struct {
	secret []byte
}

func NewTokenizer(secret string) *Tokenizer {
	return &Tokenizer{secret: []byte(secret)}
}

func (t *Tokenizer) Issue(user entities.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *Tokenizer) Parse(tokenString string) (entities.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Actor{}, ErrTokenExpired
		}
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return entities.Actor{}, ErrInvalidToken
	}

	role, ok := entities.ParseRole(claims.Role)
	if !ok {
		role = entities.DefaultRole
	}

	return entities.Actor{
		UserID: claims.Subject,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

func ActorToContext(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return actor, ok
}
