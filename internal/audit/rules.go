package audit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/audiper-dev/audiper/internal/model"
)

// DefaultContraKeywords identify retificadora (contra) accounts, which carry
// the opposite of their nature's balance by convention.
var DefaultContraKeywords = []string{
	"DEPRECIA", "AMORTIZA", "EXAUST", "PROVISÃO", "PERDAS",
	"(-)", "RETIFICADORA", "DEVEDORES DUVIDOSOS", "PREJUÍZO",
	"AJUSTE", "REDUÇÃO",
}

// Rules drives the reversed-balance check. The zero value has no expectations
// and therefore produces no findings; use DefaultRules or NewRules.
type Rules struct {
	// Expected maps a nature to the polarity its balances should carry.
	// Natures missing from the map are not checked.
	Expected map[model.Nature]model.Polarity

	keywords    []string
	foldAccents bool
}

// DefaultRules returns the standard expectations and contra keywords.
func DefaultRules() Rules {
	return NewRules(DefaultContraKeywords, false)
}

// NewRules builds Rules with the standard expectations and the given contra
// keywords. With foldAccents, keywords and descriptions are compared without
// diacritics, so "PROVISAO" also matches "Provisão".
func NewRules(keywords []string, foldAccents bool) Rules {
	r := Rules{
		Expected: map[model.Nature]model.Polarity{
			model.NatureAsset:     model.PolarityDebit,
			model.NatureLiability: model.PolarityCredit,
			model.NatureEquity:    model.PolarityCredit,
		},
		foldAccents: foldAccents,
	}
	for _, k := range keywords {
		k = r.normalize(k)
		if k != "" {
			r.keywords = append(r.keywords, k)
		}
	}
	return r
}

// Keywords returns the normalized contra keywords.
func (r Rules) Keywords() []string {
	return r.keywords
}

// IsContra reports whether a description names a contra account.
func (r Rules) IsContra(description string) bool {
	desc := r.normalize(description)
	for _, k := range r.keywords {
		if strings.Contains(desc, k) {
			return true
		}
	}
	return false
}

func (r Rules) normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !r.foldAccents {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
