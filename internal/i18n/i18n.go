// Package i18n normalizes language codes for the output and commit language settings.
//
// codexspec does not translate anything itself: it records a canonical language
// code in config.yml and the assistant reading the command templates does the rest.
package i18n

import (
	"strings"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// Language describes a supported language.
type Language struct {
	Code    string
	Name    string
	Aliases []string
}

// languages is ordered; Supported returns it in this order.
var languages = []Language{
	{Code: "en", Name: "English", Aliases: []string{"en", "en-US", "en-GB", "english"}},
	{Code: "zh-CN", Name: "Chinese (Simplified)", Aliases: []string{"zh", "zh-cn", "zh-Hans", "chinese", "chinese-simplified"}},
	{Code: "zh-TW", Name: "Chinese (Traditional)", Aliases: []string{"zh-tw", "zh-Hant", "chinese-traditional"}},
	{Code: "ja", Name: "Japanese", Aliases: []string{"ja", "jp", "japanese"}},
	{Code: "ko", Name: "Korean", Aliases: []string{"ko", "kr", "korean"}},
	{Code: "es", Name: "Spanish", Aliases: []string{"es", "spa", "spanish"}},
	{Code: "fr", Name: "French", Aliases: []string{"fr", "fra", "french"}},
	{Code: "de", Name: "German", Aliases: []string{"de", "deu", "german"}},
	{Code: "pt", Name: "Portuguese", Aliases: []string{"pt", "por", "portuguese"}},
	{Code: "ru", Name: "Russian", Aliases: []string{"ru", "rus", "russian"}},
	{Code: "it", Name: "Italian", Aliases: []string{"it", "ita", "italian"}},
	{Code: "ar", Name: "Arabic", Aliases: []string{"ar", "ara", "arabic"}},
	{Code: "hi", Name: "Hindi", Aliases: []string{"hi", "hin", "hindi"}},
}

var (
	aliasToCode = map[string]string{}
	codeToLang  = map[string]Language{}
)

func init() {
	for _, l := range languages {
		codeToLang[l.Code] = l
		aliasToCode[strings.ToLower(l.Code)] = l.Code
		for _, a := range l.Aliases {
			aliasToCode[strings.ToLower(a)] = l.Code
		}
	}
}

// Normalize returns the canonical form of a language code.
//
//	Normalize("")        == "en"
//	Normalize("zh")      == "zh-CN"
//	Normalize("ZH-CN")   == "zh-CN"
//	Normalize("english") == "en"
//	Normalize("pt-br")   == "pt-BR"
//
// Unknown codes are kept: "xx-yy" becomes "xx-YY", anything else is lowercased.
func Normalize(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return DefaultLanguage
	}
	if canonical, ok := aliasToCode[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	parts := strings.Split(trimmed, "-")
	if len(parts) == 2 {
		return strings.ToLower(parts[0]) + "-" + strings.ToUpper(parts[1])
	}
	return strings.ToLower(trimmed)
}

// FromEnv returns the preferred language from the environment, or "" if none is set.
// CODEXSPEC_LANG wins over LANG; LANG values like "zh_CN.UTF-8" are read as "zh-CN".
func FromEnv(getenv func(string) string) string {
	if v := getenv("CODEXSPEC_LANG"); v != "" {
		return Normalize(v)
	}
	lang := getenv("LANG")
	if lang == "" {
		return ""
	}
	locale, _, _ := strings.Cut(lang, ".")
	lng, region, ok := strings.Cut(locale, "_")
	if !ok {
		return ""
	}
	return Normalize(lng + "-" + region)
}

// IsSupported reports whether code normalizes to a supported language.
func IsSupported(code string) bool {
	_, ok := codeToLang[Normalize(code)]
	return ok
}

// Name returns the human-readable name of code, or the normalized code if unknown.
func Name(code string) string {
	normalized := Normalize(code)
	if l, ok := codeToLang[normalized]; ok {
		return l.Name
	}
	return normalized
}

// Supported returns the supported languages in display order.
func Supported() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}
