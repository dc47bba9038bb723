package config

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLanguage turns a user supplied language ("en", "pt_br", "fr-FR")
// into the ISO-639-1 + ISO-3166-1 form TMDB expects ("en-US", "pt-BR", "fr-FR").
// Unparseable input falls back to DefaultLanguage.
func NormalizeLanguage(raw string) string {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "_", "-"))
	if raw == "" {
		return DefaultLanguage
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultLanguage
	}

	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.No {
		return base.String()
	}
	return base.String() + "-" + region.String()
}
