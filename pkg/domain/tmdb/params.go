package tmdb

import (
	"fmt"
	"regexp"
	"strings"
)

// languagePattern accepts an ISO 639-1 code with an optional ISO 3166-1 region, e.g. "en" or "pt-BR".
var languagePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

type Language string

func ParseLanguage(raw string) (Language, error) {
	if !languagePattern.MatchString(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, raw)
	}
	return Language(raw), nil
}

func (l Language) String() string { return string(l) }

type SearchQuery string

func ParseSearchQuery(raw string) (SearchQuery, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrMissingQuery
	}
	return SearchQuery(q), nil
}

func (q SearchQuery) String() string { return string(q) }
