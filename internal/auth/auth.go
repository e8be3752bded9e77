package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const RoleOperator = "operator"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// GenerateToken signs claims with HS256. The subject is kept; expiry, issue
// time and a fresh token id are set from now and ttl.
func GenerateToken(secret string, claims Claims, now time.Time, ttl time.Duration) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.Subject,
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type Token struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Authenticator issues operator tokens against a single bcrypt hash.
type Authenticator struct {
	secret       string
	passwordHash string
	ttl          time.Duration
	now          func() time.Time
}

func NewAuthenticator(secret, passwordHash string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: secret, passwordHash: passwordHash, ttl: ttl, now: time.Now}
}

func (a *Authenticator) Login(password string) (Token, error) {
	if password == "" || CheckPassword(a.passwordHash, password) != nil {
		return Token{}, ErrInvalidCredentials
	}
	now := a.now()
	signed, err := GenerateToken(a.secret, Claims{
		Role:             RoleOperator,
		RegisteredClaims: jwt.RegisteredClaims{Subject: RoleOperator},
	}, now, a.ttl)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: signed, TokenType: "Bearer", ExpiresAt: now.Add(a.ttl)}, nil
}

func (a *Authenticator) Verify(tokenString string) (*Claims, error) {
	return ParseToken(a.secret, tokenString)
}
