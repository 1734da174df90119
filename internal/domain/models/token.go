package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
)

// Token — проверенная секретная строка. Конструктор отклоняет любой
// символ вне шестнадцатеричного алфавита; пустая строка проходит
// проверку, отклонять ей нечего.
type Token struct {
	value string
}

func NewToken(value string) (Token, error) {
	for _, r := range value {
		if !isHexDigit(r) {
			return Token{}, &domainerrors.ErrInvalidTokenFormat{}
		}
	}

	return Token{value: value}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (t Token) Value() string {
	return t.value
}

func (t Token) String() string {
	return t.value
}

func (t Token) Equal(other Token) bool {
	return t.value == other.value
}

// TokenGenerator создаёт новый токен из криптографически стойкого
// источника случайности.
type TokenGenerator interface {
	Generate() (Token, error)
}

const tokenByteLength = 16

// HexTokenGenerator выпускает токены из 16 случайных байт в виде
// 32 шестнадцатеричных символов в нижнем регистре.
type HexTokenGenerator struct{}

func NewHexTokenGenerator() *HexTokenGenerator {
	return &HexTokenGenerator{}
}

func (g *HexTokenGenerator) Generate() (Token, error) {
	buf := make([]byte, tokenByteLength)

	if _, err := rand.Read(buf); err != nil {
		return Token{}, fmt.Errorf("ошибка при генерации случайных байт токена: %w", err)
	}

	return NewToken(hex.EncodeToString(buf))
}
