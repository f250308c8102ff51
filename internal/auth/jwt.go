package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTLPadrao é a validade dos tokens emitidos pela task "token".
const TTLPadrao = 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
}

// Autenticador emite e valida tokens HS256 com um segredo compartilhado.
type Autenticador struct {
	secret []byte
	issuer string
	agora  func() time.Time
}

func NovoAutenticador(secret, issuer string) (*Autenticador, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET não definida")
	}
	return &Autenticador{secret: []byte(secret), issuer: issuer, agora: time.Now}, nil
}

// GerarToken gera um JWT para subject com a validade informada.
func (a *Autenticador) GerarToken(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("subject vazio")
	}
	now := a.agora()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidarToken valida assinatura, expiração e (se configurado) o issuer.
func (a *Autenticador) ValidarToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.agora),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
