package model

import "time"

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// RefreshTokenRecord is the value persisted under refresh_token:{token_id}.
type RefreshTokenRecord struct {
	Subject  string    `json:"subject"`
	IssuedAt time.Time `json:"issued_at"`
}

type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Principal       Principal
}
