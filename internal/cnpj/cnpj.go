// Package cnpj validates Brazilian company taxpayer IDs (CNPJ) using the
// official weighted mod-11 check-digit rule.
package cnpj

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Length is the number of digits in a CNPJ.
const Length = 14

// BaseLength is the number of digits before the two check digits.
const BaseLength = 12

var (
	firstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	nonDigit = regexp.MustCompile(`\D`)
)

// Sentinel errors for the three failure reasons.
var (
	ErrInvalidCNPJ      = errors.New("invalid cnpj")
	ErrInvalidLength    = fmt.Errorf("%w: must contain exactly %d digits", ErrInvalidCNPJ, Length)
	ErrRepeatedDigits   = fmt.Errorf("%w: all digits are the same", ErrInvalidCNPJ)
	ErrChecksumMismatch = fmt.Errorf("%w: check digits do not match", ErrInvalidCNPJ)
	ErrInvalidBase      = errors.New("cnpj base must contain exactly 12 digits")
)

// Reason tells why a CNPJ was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonLength
	ReasonRepeatedDigits
	ReasonChecksum
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonLength:
		return "invalid_length"
	case ReasonRepeatedDigits:
		return "repeated_digits"
	case ReasonChecksum:
		return "checksum_mismatch"
	default:
		return "unknown"
	}
}

// MarshalText encodes the reason with its string form.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (r *Reason) UnmarshalText(text []byte) error {
	for _, candidate := range []Reason{ReasonNone, ReasonLength, ReasonRepeatedDigits, ReasonChecksum} {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown cnpj reason %q", text)
}

// Result is the outcome of a single validation.
type Result struct {
	Valid    bool
	Reason   Reason
	Cleaned  string
	Expected string // computed check digits, empty when never computed
	Supplied string // trailing two digits, empty when length is wrong
}

// Err returns nil for a valid result and the matching sentinel error otherwise.
func (r Result) Err() error {
	switch r.Reason {
	case ReasonNone:
		return nil
	case ReasonLength:
		return ErrInvalidLength
	case ReasonRepeatedDigits:
		return ErrRepeatedDigits
	default:
		return ErrChecksumMismatch
	}
}

// Clean removes all non-numeric characters from a CNPJ
func Clean(cnpj string) string {
	return nonDigit.ReplaceAllString(cnpj, "")
}

// IsValid validates a CNPJ, formatted or not.
func IsValid(cnpj string) bool {
	return Validate(cnpj).Valid
}

// Validate runs the full check and reports why a CNPJ was rejected.
// Length is checked before repeated digits.
func Validate(cnpj string) Result {
	cleaned := Clean(cnpj)
	res := Result{Cleaned: cleaned}

	if len(cleaned) != Length {
		res.Reason = ReasonLength
		return res
	}

	res.Supplied = cleaned[BaseLength:]

	if isAllSameDigit(cleaned) {
		res.Reason = ReasonRepeatedDigits
		return res
	}

	// cleaned only holds ASCII digits here, so the error is unreachable
	expected, _ := CheckDigits(cleaned[:BaseLength])
	res.Expected = expected

	if expected != res.Supplied {
		res.Reason = ReasonChecksum
		return res
	}

	res.Valid = true
	return res
}

// CheckDigits computes the two check digits for a 12-digit base.
func CheckDigits(base string) (string, error) {
	if len(base) != BaseLength || nonDigit.MatchString(base) {
		return "", ErrInvalidBase
	}

	digits := make([]int, BaseLength, Length-1)
	for i := 0; i < BaseLength; i++ {
		digits[i] = int(base[i] - '0')
	}

	first := calculateCheckDigit(digits, firstWeights)
	digits = append(digits, first)
	second := calculateCheckDigit(digits, secondWeights)

	return strconv.Itoa(first) + strconv.Itoa(second), nil
}

// Complete appends the check digits to a base. Punctuation in base is ignored.
func Complete(base string) (string, error) {
	cleaned := Clean(base)
	digits, err := CheckDigits(cleaned)
	if err != nil {
		return "", err
	}
	return cleaned + digits, nil
}

// calculateCheckDigit applies the weights positionally and reduces mod 11.
func calculateCheckDigit(digits []int, weights []int) int {
	sum := 0
	for i, digit := range digits {
		sum += digit * weights[i]
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func isAllSameDigit(s string) bool {
	if len(s) == 0 {
		return false
	}

	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}
