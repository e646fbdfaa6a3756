package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Payload struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewPayload(userID string, username string, duration time.Duration) (payload Payload, err error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return payload, fmt.Errorf("failed to generate tokenID: %w", err)
	}

	payload = Payload{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Issuer:    "ebay",
			Subject:   userID,
			Audience:  jwt.ClaimStrings{"client"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		},
	}

	return payload, nil
}
