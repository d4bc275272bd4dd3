package session

import (
	"time"

	"otobiznes/config"
	"otobiznes/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	claimSessionID = "sid"
	issuer         = "otobiznes-web"
)

// jwtCookieSigner signs session IDs as HS256 JWTs.
type jwtCookieSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCookieSigner creates the signer from the session config section.
func NewCookieSigner(cfg *config.Config) (service.SessionCookieSigner, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtCookieSigner{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

func (s *jwtCookieSigner) Sign(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("empty session id")
	}

	now := s.now()
	claims := jwt.MapClaims{
		claimSessionID: sessionID,
		"iss":          issuer,
		"iat":          now.Unix(),
		"exp":          now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session cookie")
	}

	return signed, nil
}

func (s *jwtCookieSigner) Parse(value string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", errors.Wrap(err, "parse session cookie")
	}

	sessionID, ok := claims[claimSessionID].(string)
	if !ok || sessionID == "" {
		return "", errors.New("session cookie without sid")
	}

	return sessionID, nil
}
