package faker

import (
	"strings"

	"golang.org/x/text/language"
)

// supportedTags lists the locales with a bundled dataset. The first entry is
// the fallback for unmatched tags.
var supportedTags = []language.Tag{
	language.AmericanEnglish,    // en-US
	language.MustParse("fa-IR"), // fa-IR
}

var localeMatcher = language.NewMatcher(supportedTags)

// resolveLocale maps a user-supplied locale string to a supported dataset
// key. Underscore separators (en_US) are accepted alongside BCP 47 hyphens.
func resolveLocale(locale string) string {
	if locale == "" {
		return supportedTags[0].String()
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return supportedTags[0].String()
	}
	_, idx, _ := localeMatcher.Match(tag)
	return supportedTags[idx].String()
}
