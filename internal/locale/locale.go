// Package locale negotiates the page language and looks up translated copy
package locale

import (
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const CookieName = "lang"

// Supported lists the site languages. The first entry is the fallback.
var Supported = []language.Tag{
	language.English,
	language.Portuguese,
}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

// Localizer renders catalog messages for a single language.
// Not safe for concurrent use; create one per request.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// Negotiate picks the site language. Sources are tried in order: the
// ?lang= query value, the lang cookie, then the Accept-Language header.
// The first source that matches a supported language wins.
func Negotiate(query, cookie, acceptLanguage string) language.Tag {
	for _, pref := range []string{query, cookie, acceptLanguage} {
		if pref == "" {
			continue
		}
		desired, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(desired) == 0 {
			continue
		}
		if _, idx, conf := matcher.Match(desired...); conf != language.No {
			return Supported[idx]
		}
	}
	return Supported[0]
}

// IsSupported reports whether lang names one of the site languages
func IsSupported(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, _, conf := matcher.Match(tag)
	return conf != language.No
}

// New returns a Localizer for tag
func New(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Lang returns the base language code, e.g. "en"
func (l *Localizer) Lang() string {
	base, _ := l.tag.Base()
	return base.String()
}

// T returns the message for key. Unknown keys come back unchanged.
func (l *Localizer) T(key string, args ...interface{}) string {
	return l.printer.Sprintf(key, args...)
}

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				log.Printf("[LOCALE]: Failed to add message %s for %s: %v", key, tag, err)
			}
		}
	}
	return b
}
