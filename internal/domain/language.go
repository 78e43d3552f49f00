package domain

import (
	"fmt"
	"sort"
	"strings"
)

type Language struct {
	Code string
	Name string
}

// languageNames lists the codes accepted by the Google web translator.
var languageNames = map[string]string{
	"af":    "Afrikaans",
	"am":    "Amharic",
	"ar":    "Arabic",
	"az":    "Azerbaijani",
	"be":    "Belarusian",
	"bg":    "Bulgarian",
	"bn":    "Bengali",
	"bs":    "Bosnian",
	"ca":    "Catalan",
	"ceb":   "Cebuano",
	"co":    "Corsican",
	"cs":    "Czech",
	"cy":    "Welsh",
	"da":    "Danish",
	"de":    "German",
	"el":    "Greek",
	"en":    "English",
	"eo":    "Esperanto",
	"es":    "Spanish",
	"et":    "Estonian",
	"eu":    "Basque",
	"fa":    "Persian",
	"fi":    "Finnish",
	"fr":    "French",
	"fy":    "Frisian",
	"ga":    "Irish",
	"gd":    "Scots Gaelic",
	"gl":    "Galician",
	"gu":    "Gujarati",
	"ha":    "Hausa",
	"haw":   "Hawaiian",
	"hi":    "Hindi",
	"hmn":   "Hmong",
	"hr":    "Croatian",
	"ht":    "Haitian Creole",
	"hu":    "Hungarian",
	"hy":    "Armenian",
	"id":    "Indonesian",
	"ig":    "Igbo",
	"is":    "Icelandic",
	"it":    "Italian",
	"iw":    "Hebrew",
	"ja":    "Japanese",
	"jw":    "Javanese",
	"ka":    "Georgian",
	"kk":    "Kazakh",
	"km":    "Khmer",
	"kn":    "Kannada",
	"ko":    "Korean",
	"ku":    "Kurdish",
	"ky":    "Kyrgyz",
	"la":    "Latin",
	"lb":    "Luxembourgish",
	"lo":    "Lao",
	"lt":    "Lithuanian",
	"lv":    "Latvian",
	"mg":    "Malagasy",
	"mi":    "Maori",
	"mk":    "Macedonian",
	"ml":    "Malayalam",
	"mn":    "Mongolian",
	"mr":    "Marathi",
	"ms":    "Malay",
	"mt":    "Maltese",
	"my":    "Myanmar (Burmese)",
	"ne":    "Nepali",
	"nl":    "Dutch",
	"no":    "Norwegian",
	"ny":    "Chichewa",
	"pa":    "Punjabi",
	"pl":    "Polish",
	"ps":    "Pashto",
	"pt":    "Portuguese",
	"ro":    "Romanian",
	"ru":    "Russian",
	"sd":    "Sindhi",
	"si":    "Sinhala",
	"sk":    "Slovak",
	"sl":    "Slovenian",
	"sm":    "Samoan",
	"sn":    "Shona",
	"so":    "Somali",
	"sq":    "Albanian",
	"sr":    "Serbian",
	"st":    "Sesotho",
	"su":    "Sundanese",
	"sv":    "Swedish",
	"sw":    "Swahili",
	"ta":    "Tamil",
	"te":    "Telugu",
	"tg":    "Tajik",
	"th":    "Thai",
	"tl":    "Filipino",
	"tr":    "Turkish",
	"uk":    "Ukrainian",
	"ur":    "Urdu",
	"uz":    "Uzbek",
	"vi":    "Vietnamese",
	"xh":    "Xhosa",
	"yi":    "Yiddish",
	"yo":    "Yoruba",
	"zh-CN": "Chinese (Simplified)",
	"zh-TW": "Chinese (Traditional)",
	"zu":    "Zulu",
}

// "auto" is accepted as a source only.
const AutoDetect = "auto"

func SupportedLanguages() []Language {
	languages := make([]Language, 0, len(languageNames))
	for code, name := range languageNames {
		languages = append(languages, Language{Code: code, Name: name})
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Code < languages[j].Code
	})
	return languages
}

// CanonicalLanguageCode turns "pt_br" or "PT-br" into "pt-BR".
func CanonicalLanguageCode(code string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// ResolveLanguage maps a user supplied code onto a supported one, falling back
// from a regional variant to its base language.
func ResolveLanguage(code string) (Language, error) {
	normalized := CanonicalLanguageCode(code)
	if name, ok := languageNames[normalized]; ok {
		return Language{Code: normalized, Name: name}, nil
	}
	base := strings.SplitN(normalized, "-", 2)[0]
	if name, ok := languageNames[base]; ok {
		return Language{Code: base, Name: name}, nil
	}
	switch base {
	case "zh":
		return Language{Code: "zh-CN", Name: languageNames["zh-CN"]}, nil
	case "he":
		return Language{Code: "iw", Name: languageNames["iw"]}, nil
	}
	return Language{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

func ResolveSourceLanguage(code string) (Language, error) {
	if strings.EqualFold(strings.TrimSpace(code), AutoDetect) {
		return Language{Code: AutoDetect, Name: "Detect language"}, nil
	}
	return ResolveLanguage(code)
}
