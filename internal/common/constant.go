package common

import "time"

// TokenCookieName is the cookie carrying the signed session token.
const TokenCookieName = "token"

// DefaultTokenValidity is the lifetime of a session token and of its cookie.
const DefaultTokenValidity = time.Hour

// BcryptCost is the work factor used for password hashes.
const BcryptCost = 10
