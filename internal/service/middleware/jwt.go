package middleware

import (
	"cybertaxi/domain"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt"
)

type JwtTokenService interface {
	Create(playerID int, tokenExpTime int64) (string, error)
	Validate(tokenString string) (*JwtClaims, error)
	ParseSecretGetter(token *jwt.Token) (interface{}, error)
}

type JwtToken struct {
	Secret []byte
}

// NewJwtToken requires a non-empty secret; there is no fallback value.
func NewJwtToken(secret string) (JwtTokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	return &JwtToken{
		Secret: []byte(secret),
	}, nil
}

// JwtClaims carries the public player_id. The surrogate key never appears
// in a token.
type JwtClaims struct {
	PlayerID int `json:"player_id"`
	jwt.StandardClaims
}

func (tk *JwtToken) Create(playerID int, tokenExpTime int64) (string, error) {
	data := JwtClaims{
		PlayerID: playerID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: tokenExpTime,
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, data)
	return token.SignedString(tk.Secret)
}

func (tk *JwtToken) Validate(tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, tk.ParseSecretGetter)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*JwtClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.ExpiresAt < time.Now().Unix() {
		return nil, fmt.Errorf("token has expired")
	}

	return claims, nil
}

func (tk *JwtToken) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	method, ok := token.Method.(*jwt.SigningMethodHMAC)
	if !ok || method.Alg() != "HS256" {
		return nil, fmt.Errorf("bad sign method")
	}
	return tk.Secret, nil
}

// BearerClaims extracts and validates the bearer token on r. The two error
// cases map to Unauthenticated; ownership checks happen in the usecases.
func BearerClaims(r *http.Request, tk JwtTokenService) (*JwtClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, domain.ErrMissingToken
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := tk.Validate(tokenString)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
