package confirmation

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// DefaultPrefix префикс кода подтверждения
	DefaultPrefix = "HLS"

	// Length количество случайных символов после префикса
	Length = 8

	// Charset без визуально похожих символов (0/O, 1/I)
	Charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// MaxCodeLength длина колонки appointments.confirmation_code
	MaxCodeLength = 20

	// MaxPrefixLength наибольший префикс, при котором код помещается в колонку
	MaxPrefixLength = MaxCodeLength - 1 - Length
)

// ValidatePrefix проверяет, что префикс из заглавных латинских букв и цифр и код с ним помещается в колонку.
// Коды ищутся в верхнем регистре, поэтому строчные буквы не допускаются.
func ValidatePrefix(prefix string) error {
	if len(prefix) > MaxPrefixLength {
		return fmt.Errorf("confirmation: prefix %q is longer than %d characters", prefix, MaxPrefixLength)
	}
	for _, r := range prefix {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("confirmation: prefix %q must contain only A-Z and 0-9", prefix)
		}
	}
	return nil
}

// Generator генерирует коды вида PREFIX-XXXXXXXX
type Generator struct {
	prefix string
}

// NewGenerator создает генератор; пустой префикс заменяется на DefaultPrefix
func NewGenerator(prefix string) *Generator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{prefix: prefix}
}

// Generate возвращает новый код. Уникальность гарантирует индекс в БД.
func (g *Generator) Generate() (string, error) {
	max := big.NewInt(int64(len(Charset)))

	var b strings.Builder
	b.Grow(len(g.prefix) + 1 + Length)
	b.WriteString(g.prefix)
	b.WriteByte('-')

	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("confirmation: read random: %w", err)
		}
		b.WriteByte(Charset[n.Int64()])
	}

	return b.String(), nil
}
