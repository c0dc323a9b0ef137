// Package sku produces variant codes. Generation is statistically unique;
// the repository's SkuExists check stays the authoritative guard before
// persistence.
package sku

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator produces candidate SKU codes
type Generator interface {
	Next() string
}

// TokenSource yields the opaque token part of a code; injected so tests can
// pin the output.
type TokenSource func() string

// Clock yields the time-derived part; epoch-second granularity is enough.
type Clock func() time.Time

type generator struct {
	tokens TokenSource
	clock  Clock
}

// NewGenerator builds the default generator: an 8-character random token
// plus the current unix timestamp, joined by a dash and uppercased.
func NewGenerator() Generator {
	return New(defaultTokenSource, time.Now)
}

// New builds a generator with explicit token and clock sources
func New(tokens TokenSource, clock Clock) Generator {
	return &generator{tokens: tokens, clock: clock}
}

func (g *generator) Next() string {
	token := g.tokens()
	if len(token) > 8 {
		token = token[:8]
	}
	return strings.ToUpper(fmt.Sprintf("%s-%d", token, g.clock().Unix()))
}

func defaultTokenSource() string {
	return uuid.New().String()[:8]
}
