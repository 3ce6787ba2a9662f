package auth

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

var (
	ErrEmptyPIN   = errors.New("pin cannot be empty")
	ErrInvalidPIN = errors.New("pin must contain digits only")

	pinRegex = regexp.MustCompile(`^[0-9]+$`)
)

type HashServiceInterface interface {
	HashPIN(pin string) (string, error)
	ComparePIN(hashedPIN, pin string) bool
}

type HashService struct{}

func (b *HashService) HashPIN(pin string) (string, error) {
	if pin == "" {
		return "", ErrEmptyPIN
	}
	if !pinRegex.MatchString(pin) {
		return "", ErrInvalidPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) ComparePIN(hashedPIN, pin string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
	return err == nil
}
