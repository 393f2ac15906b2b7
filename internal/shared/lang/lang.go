// Package lang resolves the plan languages supported by the service.
// French is the primary language, Arabic the secondary one.
package lang

import (
	"golang.org/x/text/language"
)

const (
	French = "fr"
	Arabic = "ar"
)

var supported = []language.Tag{
	language.French, // fr, the default
	language.Arabic, // ar
}

var matcher = language.NewMatcher(supported)

// IsSupported reports whether code is one of the supported plan languages.
func IsSupported(code string) bool {
	return code == French || code == Arabic
}

// Normalize maps an arbitrary language code to a supported one,
// falling back to French. It accepts BCP 47 inputs such as "ar-MA".
func Normalize(code string) string {
	if code == "" {
		return French
	}
	tag, err := language.Parse(code)
	if err != nil {
		return French
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return French
	}
	return codeOf(supported[idx])
}

// FromAcceptLanguage negotiates a supported language from an
// Accept-Language header value.
func FromAcceptLanguage(header string) string {
	if header == "" {
		return French
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return French
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return French
	}
	return codeOf(supported[idx])
}

func codeOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
