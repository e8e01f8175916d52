package savecode

import "github.com/osse101/GardenPlanner_Go/internal/domain"

// Version tags
const (
	VersionLegacy  = "v0.1"
	VersionCurrent = "v0.2"
)

// EmptyCode marks a tile without a crop in every alphabet
const EmptyCode = "N"

// alphabet is one version's crop and fertiliser code table
type alphabet struct {
	version string
	crops   map[string]domain.CropKind
	ferts   map[string]domain.FertiliserKind
	// twoLetterFerts is set when fertiliser codes are two uppercase letters
	// (v0.1); otherwise they are an uppercase letter and an optional lowercase one.
	twoLetterFerts bool

	cropCodes map[domain.CropKind]string
	fertCodes map[domain.FertiliserKind]string
}

func newAlphabet(version string, twoLetterFerts bool, crops map[string]domain.CropKind, ferts map[string]domain.FertiliserKind) *alphabet {
	a := &alphabet{
		version:        version,
		crops:          crops,
		ferts:          ferts,
		twoLetterFerts: twoLetterFerts,
		cropCodes:      make(map[domain.CropKind]string, len(crops)),
		fertCodes:      make(map[domain.FertiliserKind]string, len(ferts)),
	}
	for code, kind := range crops {
		a.cropCodes[kind] = code
	}
	for code, kind := range ferts {
		a.fertCodes[kind] = code
	}
	return a
}

var legacyAlphabet = newAlphabet(VersionLegacy, true,
	map[string]domain.CropKind{
		EmptyCode: domain.CropNone,
		"T":       "tomato",
		"P":       "potato",
		"R":       "rice",
		"W":       "wheat",
		"C":       "carrot",
		"O":       "onion",
		"Ct":      "cotton",
		"Nc":      "napa_cabbage",
		"Bc":      "bok_choy",
		"Co":      "corn",
		"Sp":      "spicy_pepper",
		"Bb":      "blueberry",
		"Pu":      "rockhopper_pumpkin",
		"Bf":      "batterfly_bean",
		"Ap":      "apple",
	},
	map[string]domain.FertiliserKind{
		"SG": "speedy_gro",
		"QU": "quality_up",
		"HB": "harvest_boost",
		"HP": "hydrate_pro",
		"WB": "weed_block",
	},
)

var currentAlphabet = newAlphabet(VersionCurrent, false,
	map[string]domain.CropKind{
		EmptyCode: domain.CropNone,
		"T":       "tomato",
		"P":       "potato",
		"R":       "rice",
		"W":       "wheat",
		"C":       "carrot",
		"O":       "onion",
		"Co":      "cotton",
		"Na":      "napa_cabbage",
		"Bk":      "bok_choy",
		"Cr":      "corn",
		"S":       "spicy_pepper",
		"B":       "blueberry",
		"Rp":      "rockhopper_pumpkin",
		"Bt":      "batterfly_bean",
		"A":       "apple",
	},
	map[string]domain.FertiliserKind{
		"S": "speedy_gro",
		"Q": "quality_up",
		"H": "harvest_boost",
		"Y": "hydrate_pro",
		"W": "weed_block",
	},
)

var alphabets = map[string]*alphabet{
	VersionLegacy:  legacyAlphabet,
	VersionCurrent: currentAlphabet,
}

// CropCode returns the current-version code for a crop kind
func CropCode(kind domain.CropKind) (string, bool) {
	code, ok := currentAlphabet.cropCodes[kind]
	return code, ok
}

// CropForCode returns the crop kind behind a current-version code
func CropForCode(code string) (domain.CropKind, bool) {
	kind, ok := currentAlphabet.crops[code]
	return kind, ok && kind != domain.CropNone
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

// scanCrop reads a crop code (an uppercase letter and an optional lowercase one) from s
func scanCrop(s string) (string, bool) {
	if len(s) == 0 || !isUpper(s[0]) {
		return "", false
	}
	if len(s) > 1 && isLower(s[1]) {
		return s[:2], true
	}
	return s[:1], true
}

// scanFert reads a fertiliser code from s in the alphabet's style
func (a *alphabet) scanFert(s string) (string, bool) {
	if a.twoLetterFerts {
		if len(s) < 2 || !isUpper(s[0]) || !isUpper(s[1]) {
			return "", false
		}
		return s[:2], true
	}
	return scanCrop(s)
}
