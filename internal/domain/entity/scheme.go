package entity

import (
	"errors"
	"strings"
)

var ErrUnknownScheme = errors.New("unknown payment scheme")

type PaymentScheme int

const (
	SchemeFasterPayments PaymentScheme = iota
	SchemeBacs
	SchemeChaps
)

func (s PaymentScheme) String() string {
	switch s {
	case SchemeFasterPayments:
		return "faster_payments"
	case SchemeBacs:
		return "bacs"
	case SchemeChaps:
		return "chaps"
	default:
		return "unknown"
	}
}

// Flag maps the scheme to its bit in AllowedPaymentSchemes.
func (s PaymentScheme) Flag() AllowedPaymentSchemes {
	switch s {
	case SchemeFasterPayments:
		return AllowFasterPayments
	case SchemeBacs:
		return AllowBacs
	case SchemeChaps:
		return AllowChaps
	default:
		return AllowNone
	}
}

func ParsePaymentScheme(raw string) (PaymentScheme, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "faster_payments", "fasterpayments", "fps":
		return SchemeFasterPayments, nil
	case "bacs":
		return SchemeBacs, nil
	case "chaps":
		return SchemeChaps, nil
	default:
		return 0, ErrUnknownScheme
	}
}

// AllowedPaymentSchemes is a bit set of schemes an account may pay out on.
type AllowedPaymentSchemes uint8

const AllowNone AllowedPaymentSchemes = 0

const (
	AllowFasterPayments AllowedPaymentSchemes = 1 << iota
	AllowBacs
	AllowChaps
)

const allowAll = AllowFasterPayments | AllowBacs | AllowChaps

func (a AllowedPaymentSchemes) Has(flag AllowedPaymentSchemes) bool {
	return flag != AllowNone && a&flag == flag
}

// Allows reports whether the scheme's bit is set, regardless of other bits.
func (a AllowedPaymentSchemes) Allows(s PaymentScheme) bool {
	return a.Has(s.Flag())
}

// Valid reports whether only known scheme bits are set.
func (a AllowedPaymentSchemes) Valid() bool {
	return a&^allowAll == 0
}

func (a AllowedPaymentSchemes) Schemes() []PaymentScheme {
	var out []PaymentScheme
	for _, s := range []PaymentScheme{SchemeFasterPayments, SchemeBacs, SchemeChaps} {
		if a.Allows(s) {
			out = append(out, s)
		}
	}
	return out
}

func (a AllowedPaymentSchemes) String() string {
	schemes := a.Schemes()
	if len(schemes) == 0 {
		return "none"
	}
	names := make([]string, 0, len(schemes))
	for _, s := range schemes {
		names = append(names, s.String())
	}
	return strings.Join(names, "|")
}
