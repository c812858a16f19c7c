package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/lcmanager/internal/core/domain"
	"github.com/MikeRez0/lcmanager/internal/core/port"
)

const tokenTTL = 12 * time.Hour

type PasetoToken struct {
	parser paseto.Parser
	key    paseto.V4SymmetricKey
	ttl    time.Duration
}

// New builds a token service from a hex encoded v4 local key.
// A random key is generated when hexKey is empty, so issued tokens
// do not survive a restart.
func New(hexKey string) (*PasetoToken, error) {
	key := paseto.NewV4SymmetricKey()
	if hexKey != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(hexKey)
		if err != nil {
			return nil, fmt.Errorf("bad token key: %w", err)
		}
	}

	return &PasetoToken{
		parser: paseto.NewParser(),
		key:    key,
		ttl:    tokenTTL,
	}, nil
}

func (p *PasetoToken) CreateToken(payload port.TokenPayload) (string, error) {
	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
