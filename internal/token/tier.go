package token

import (
	"fmt"
	"strings"
)

// Tier is a reservation category of the reserved-word table.
type Tier uint8

const (
	TierNone Tier = iota
	// TierKeyword is reserved unconditionally.
	TierKeyword
	// TierFutureReservedLax is reserved in every mode as a later-edition addition.
	TierFutureReservedLax
	// TierFutureReservedStrict tags the strict-only additions. As an aggregate
	// it also contains every TierFutureReservedLax word.
	TierFutureReservedStrict
	// TierLiteral covers null, true and false.
	TierLiteral
	// TierContextual covers words the grammar recognizes but never reserves.
	TierContextual
)

var tierNames = [...]string{
	TierNone:                 "none",
	TierKeyword:              "keyword",
	TierFutureReservedLax:    "future-reserved-lax",
	TierFutureReservedStrict: "future-reserved-strict",
	TierLiteral:              "literal",
	TierContextual:           "contextual",
}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "unknown"
}

// Tiers lists every real tier in table order.
func Tiers() []Tier {
	return []Tier{TierKeyword, TierFutureReservedLax, TierFutureReservedStrict, TierLiteral, TierContextual}
}

// ParseTier converts a tier name into a Tier.
func ParseTier(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tierNames {
		if i != int(TierNone) && n == name {
			return Tier(i), nil // #nosec G115 -- tierNames is tiny
		}
	}
	return TierNone, fmt.Errorf("unknown tier %q", s)
}

// Mode selects the reserved-word set used for identifier gating.
type Mode uint8

const (
	// ModeSloppy reserves keywords, lax future words and literals.
	ModeSloppy Mode = iota
	// ModeStrict additionally reserves the strict-only future words.
	ModeStrict
)

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "sloppy"
}

// ParseMode converts "strict" / "sloppy" (or "lax") into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return ModeStrict, nil
	case "sloppy", "lax", "":
		return ModeSloppy, nil
	default:
		return ModeSloppy, fmt.Errorf("invalid mode %q (expected strict|sloppy)", s)
	}
}
