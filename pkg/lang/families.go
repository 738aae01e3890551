package lang

// Language families: codes in the same family are treated as a language
// match for scoring purposes, on the grounds that speakers can usually
// get by with each other.
var families = [][]string{
	{"RU", "UK", "BG", "HR", "PL"}, // Slavic
	{"FR", "ES", "IT", "PT", "RO"}, // Romance
	{"HE", "AR"},                   // Semitic
	{"DE", "NL", "DA"},             // Germanic
}

var familyOf = buildFamilyIndex()

func buildFamilyIndex() map[string]int {
	index := make(map[string]int)
	for i, family := range families {
		for _, code := range family {
			index[code] = i
		}
	}
	return index
}

// SameFamily reports whether two codes belong to the same language family.
// Codes outside any family (including minted codes) are only in a family
// with themselves, which Match already covers via equality.
func SameFamily(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	fa, okA := familyOf[a]
	fb, okB := familyOf[b]
	return okA && okB && fa == fb
}

// Match reports whether two resolved codes count as a language match:
// exact equality or same family. Missing codes never match.
func Match(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == b || SameFamily(a, b)
}

// builtinAliases maps free-text language names to codes. Keys are
// normalized (lowercased, whitespace collapsed) at registry construction.
var builtinAliases = map[string]string{
	// Hebrew
	"hebrew": "HE", "hebrow": "HE", "ivrit": "HE", "עברית": "HE",

	// Russian
	"russian": "RU", "russain": "RU", "רוסית": "RU",

	// Ukrainian
	"ukrainian": "UK", "ukranian": "UK", "אוקראינית": "UK",

	// English
	"english": "EN", "אנגלית": "EN",

	// French
	"french": "FR", "צרפתית": "FR",

	// Spanish
	"spanish": "ES", "ספרדית": "ES",

	// Portuguese
	"portuguese": "PT", "פורטוגזית": "PT",

	// Italian
	"italian": "IT", "איטלקית": "IT",

	// Romanian
	"romanian": "RO", "רומנית": "RO",

	// Arabic
	"arabic": "AR", "ערבית": "AR",

	// Amharic
	"amharic": "AM", "אמהרית": "AM",

	// German
	"german": "DE", "גרמנית": "DE",

	// Dutch
	"dutch": "NL", "הולנדית": "NL",

	// Danish
	"danish": "DA", "דנית": "DA",

	// Polish
	"polish": "PL", "פולנית": "PL",

	// Bulgarian
	"bulgarian": "BG", "בולגרית": "BG",

	// Croatian
	"croatian": "HR", "קרואטית": "HR",

	// Yiddish
	"yiddish": "YI", "אידיש": "YI", "יידיש": "YI",

	// Georgian
	"georgian": "KA", "גאורגית": "KA",
}
