package quote

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"time"
)

var numberPattern = regexp.MustCompile(`^QT-\d{6}-\d{6}$`)

// NumberGenerator produces QT-YYMMDD-NNNNNN. Uniqueness is best effort: the
// six random digits are the only thing separating quotes made on one day.
type NumberGenerator struct {
	Now  func() time.Time
	Rand io.Reader
}

func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{Now: time.Now, Rand: rand.Reader}
}

func (g *NumberGenerator) NewNumber() (string, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	r := g.Rand
	if r == nil {
		r = rand.Reader
	}
	n, err := rand.Int(r, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("quote number: %w", err)
	}
	return fmt.Sprintf("QT-%s-%06d", now().UTC().Format("060102"), n.Int64()), nil
}

func IsValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}
