package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestEnglishIdentity(t *testing.T) {
	SetLanguage(language.English)

	if got := T("~R~esume"); got != "~R~esume" {
		t.Errorf("T(~R~esume) = %q, want unchanged", got)
	}
	if got := T("Failed to save game (%s)!", "disk full"); got != "Failed to save game (disk full)!" {
		t.Errorf("formatting failed: %q", got)
	}
}

func TestContext(t *testing.T) {
	SetLanguage(language.English)

	full := T("~R~eturn to Launcher")
	short := C("~R~eturn to Launcher", "lowres")
	if full == short {
		t.Errorf("lowres variant should differ from %q", full)
	}
	if got := C("~Q~uit", "lowres"); got != "~Q~uit" {
		t.Errorf("missing context should fall back to T, got %q", got)
	}
}

func TestGerman(t *testing.T) {
	SetLanguage(language.German)
	defer SetLanguage(language.English)

	tests := []struct {
		msg, context, want string
	}{
		{"~R~esume", "", "~F~ortsetzen"},
		{"~R~eturn to Launcher", "", "Zur Spiele~l~iste"},
		{"~R~eturn to Launcher", "lowres", "~S~pieleliste"},
		{"Untranslated text", "", "Untranslated text"},
	}

	for _, tc := range tests {
		t.Run(tc.msg+tc.context, func(t *testing.T) {
			var got string
			if tc.context != "" {
				got = C(tc.msg, tc.context)
			} else {
				got = T(tc.msg)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSetLanguageName(t *testing.T) {
	SetLanguageName("de")
	if Language() != language.German {
		t.Errorf("expected German, got %v", Language())
	}
	SetLanguageName("not a language!")
	if Language() != language.German {
		t.Errorf("invalid name should keep German, got %v", Language())
	}
	SetLanguageName("en")
	if Language() != language.English {
		t.Errorf("expected English, got %v", Language())
	}
}

func TestTranslateKeepsPercent(t *testing.T) {
	defer SetLanguage(language.English)

	for _, tag := range []language.Tag{language.English, language.German} {
		SetLanguage(tag)
		if got := Translate("Volume 100%"); got != "Volume 100%" {
			t.Errorf("%v: Translate = %q, want unchanged", tag, got)
		}
	}

	SetLanguage(language.German)
	if got := Translate("~R~esume"); got != "~F~ortsetzen" {
		t.Errorf("Translate(~R~esume) = %q, want ~F~ortsetzen", got)
	}
}
