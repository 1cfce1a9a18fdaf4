package language

// Default is the code used whenever nothing better is known.
const Default = "en"

// Language describes a language the service can detect or respond in.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`       // English name, used in model prompts
	NativeName string `json:"nativeName"` // 用于前端展示
	Script     string `json:"script"`
}

// Seed lists every code the detector can emit.
func Seed() []Language {
	return []Language{
		{Code: "en", Name: "English", NativeName: "English", Script: "Latin"},
		{Code: "es", Name: "Spanish", NativeName: "Español", Script: "Latin"},
		{Code: "fr", Name: "French", NativeName: "Français", Script: "Latin"},
		{Code: "de", Name: "German", NativeName: "Deutsch", Script: "Latin"},
		{Code: "it", Name: "Italian", NativeName: "Italiano", Script: "Latin"},
		{Code: "pt", Name: "Portuguese", NativeName: "Português", Script: "Latin"},
		{Code: "nl", Name: "Dutch", NativeName: "Nederlands", Script: "Latin"},
		{Code: "ru", Name: "Russian", NativeName: "Русский", Script: "Cyrillic"},
		{Code: "zh", Name: "Chinese", NativeName: "中文", Script: "Han"},
		{Code: "ja", Name: "Japanese", NativeName: "日本語", Script: "Kana"},
		{Code: "ko", Name: "Korean", NativeName: "한국어", Script: "Hangul"},
		{Code: "ar", Name: "Arabic", NativeName: "العربية", Script: "Arabic"},
		{Code: "th", Name: "Thai", NativeName: "ไทย", Script: "Thai"},
		{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Script: "Devanagari"},
		{Code: "mr", Name: "Marathi", NativeName: "मराठी", Script: "Devanagari"},
		{Code: "sa", Name: "Sanskrit", NativeName: "संस्कृतम्", Script: "Devanagari"},
		{Code: "ne", Name: "Nepali", NativeName: "नेपाली", Script: "Devanagari"},
		{Code: "kok", Name: "Konkani", NativeName: "कोंकणी", Script: "Devanagari"},
		{Code: "mai", Name: "Maithili", NativeName: "मैथिली", Script: "Devanagari"},
		{Code: "brx", Name: "Bodo", NativeName: "बड़ो", Script: "Devanagari"},
		{Code: "doi", Name: "Dogri", NativeName: "डोगरी", Script: "Devanagari"},
		{Code: "bn", Name: "Bengali", NativeName: "বাংলা", Script: "Bengali"},
		{Code: "as", Name: "Assamese", NativeName: "অসমীয়া", Script: "Bengali"},
		{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ", Script: "Gurmukhi"},
		{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી", Script: "Gujarati"},
		{Code: "or", Name: "Odia", NativeName: "ଓଡ଼ିଆ", Script: "Odia"},
		{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", Script: "Tamil"},
		{Code: "te", Name: "Telugu", NativeName: "తెలుగు", Script: "Telugu"},
		{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ", Script: "Kannada"},
		{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം", Script: "Malayalam"},
		{Code: "ur", Name: "Urdu", NativeName: "اردو", Script: "Arabic"},
		{Code: "ks", Name: "Kashmiri", NativeName: "کٲشُر", Script: "Arabic"},
		{Code: "sd", Name: "Sindhi", NativeName: "سنڌي", Script: "Arabic"},
		{Code: "sat", Name: "Santali", NativeName: "ᱥᱟᱱᱛᱟᱲᱤ", Script: "Ol Chiki"},
		{Code: "mni", Name: "Manipuri", NativeName: "ꯃꯤꯇꯩꯂꯣꯟ", Script: "Meetei Mayek"},
	}
}
