// Package randompkg provides functionality for generating random client and account data.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max inclusive.
func IntBetween(min, max int) int32 {
	return int32(int64(min) + Intn(max-min+1))
}

func fromSet(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(set[Intn(k)]) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random string of length n.
func String(n int) string {
	return fromSet(alphabet, n)
}

// Digits generates a random string of n decimal digits.
func Digits(n int) string {
	return fromSet(digits, n)
}

// Name generates a random capitalized name.
func Name() string {
	s := String(6)
	return strings.ToUpper(s[:1]) + s[1:]
}

// FullName generates a random first and last name.
func FullName() string {
	return Name() + " " + Name()
}

// Address generates a random street address.
func Address() string {
	return fmt.Sprintf("%d %s St", IntBetween(1, 9999), Name())
}

// Phone generates 10 random phone digits with a non-zero area code.
func Phone() string {
	return fmt.Sprint(IntBetween(2, 9)) + Digits(9)
}

// TaxID generates 9 random tax id digits.
func TaxID() string {
	return Digits(9)
}

// EIN generates 9 random employer identification digits.
func EIN() string {
	return Digits(9)
}

// MoneyAmountBetween generates a random amount of money between min and max with two decimals.
func MoneyAmountBetween(min, max int64) decimal.Decimal {
	cents := min*100 + Intn(int((max-min)*100+1))
	return decimal.New(cents, -2)
}

// OneOf returns a random element of items.
func OneOf[T any](items ...T) T {
	return items[Intn(len(items))]
}
