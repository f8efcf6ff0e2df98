// Package i18n translates user-visible GUI strings.
//
// Messages are looked up by their English text. Hotkey markup such as
// "~R~esume" is part of the message, so translations pick their own hotkey.
package i18n

import (
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// contextSeparator joins a disambiguation context and a message into one key
const contextSeparator = "\x04"

var (
	builder = catalog.NewBuilder(catalog.Fallback(language.English))
	printer = message.NewPrinter(language.English, message.Catalog(builder))
	current = language.English

	// known records which catalog keys have a translation for the current language
	known = make(map[string]bool)
)

func init() {
	for tag, entries := range translations {
		for _, e := range entries {
			add(tag, e)
		}
	}
	SetLanguage(language.English)
}

// add registers one catalog entry
func add(tag language.Tag, e entry) {
	key := e.msg
	if e.context != "" {
		key = contextKey(e.msg, e.context)
	}
	if err := builder.SetString(tag, key, e.text); err != nil {
		log.Printf("Warning: failed to register translation %q: %v", key, err)
	}
}

// contextKey builds the catalog key for a message with a context
func contextKey(msg, context string) string {
	return context + contextSeparator + msg
}

// SetLanguage switches the translation language. Unknown languages fall
// back to English.
func SetLanguage(tag language.Tag) {
	current = tag
	printer = message.NewPrinter(tag, message.Catalog(builder))

	known = make(map[string]bool)
	base, _ := tag.Base()
	for t, entries := range translations {
		tb, _ := t.Base()
		if t != language.English && tb != base {
			continue
		}
		for _, e := range entries {
			if e.context != "" {
				known[contextKey(e.msg, e.context)] = true
			} else {
				known[e.msg] = true
			}
		}
	}
}

// SetLanguageName switches language by BCP 47 name ("de", "en-US").
// An unparseable name keeps the current language.
func SetLanguageName(name string) {
	if name == "" {
		return
	}
	tag, err := language.Parse(name)
	if err != nil {
		log.Printf("Warning: unknown GUI language %q: %v", name, err)
		return
	}
	SetLanguage(tag)
}

// Language returns the current translation language
func Language() language.Tag {
	return current
}

// T translates msg, formatting args into it
func T(msg string, args ...interface{}) string {
	return printer.Sprintf(msg, args...)
}

// Translate looks msg up without formatting it. Use it for text that comes
// from engines, which may contain a literal %.
func Translate(msg string) string {
	if !known[msg] {
		return msg
	}
	return printer.Sprintf(msg)
}

// C translates msg in a disambiguation context such as "lowres".
// Without a contextual translation it behaves like T.
func C(msg, context string, args ...interface{}) string {
	key := contextKey(msg, context)
	if !known[key] {
		return T(msg, args...)
	}
	return printer.Sprintf(key, args...)
}
