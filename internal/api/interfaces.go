package api

import (
	"context"

	"github.com/go-redis/redis_rate/v9"
	"github.com/golang-jwt/jwt/v5"

	"github.com/limbo/myfit/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// RequestRateLimiter is satisfied by *redis_rate.Limiter.
type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
