package brandprint

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxPhoneDigits is the length of a North American number.
const maxPhoneDigits = 10

// currencyPrinter groups whole amounts by thousands.
var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// BrandProfile is the subset of a brand used to pre-fill asset fields.
type BrandProfile struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
	Website string `json:"website" yaml:"website"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Logo    string `json:"logo" yaml:"logo"`
	Icon    string `json:"icon" yaml:"icon"`
}

// FormatPhone keeps the digits of raw and lays them out as
// "(ddd) ddd-dddd", dropping anything past ten digits.
func FormatPhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:min(len(digits), maxPhoneDigits)]
	}
}

// FormatCurrency keeps the digits and dots of raw and formats the result as
// a dollar amount with thousands separators and at most two decimals.
func FormatCurrency(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)

	whole, rest, hasDot := strings.Cut(stripped, ".")
	if whole == "" {
		whole = "0"
	}
	var decimals string
	if hasDot {
		frac, _, _ := strings.Cut(rest, ".")
		decimals = "." + frac[:min(len(frac), 2)]
	}
	return "$" + groupThousands(whole) + decimals
}

// groupThousands inserts comma separators into a run of digits. Leading
// zeros are kept and grouped like any other digit ("0001234" is
// "0,001,234").
func groupThousands(digits string) string {
	if digits[0] != '0' || len(digits) == 1 {
		if n, err := strconv.ParseUint(digits, 10, 64); err == nil {
			return currencyPrinter.Sprintf("%d", n)
		}
	}
	// Leading zeros or longer than uint64: group by hand.
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatField applies the input mask of a field type. Types without a mask
// return value unchanged.
func FormatField(t FieldType, value string) string {
	switch t {
	case FieldTel:
		return FormatPhone(value)
	case FieldCurrency:
		return FormatCurrency(value)
	}
	return value
}

// SeedFields pre-fills every field of asset from the brand profile. Fields
// the profile has no value for are present and empty.
func SeedFields(asset AssetTypeConfig, brand BrandProfile) map[string]string {
	seed := make(map[string]string, len(asset.Fields))
	for _, f := range asset.Fields {
		switch f.Key {
		case "email":
			seed[f.Key] = brand.Email
		case "phone":
			seed[f.Key] = FormatPhone(brand.Phone)
		case "tagline":
			seed[f.Key] = brand.Tagline
		case "website":
			seed[f.Key] = brand.Website
		case "companyName", "fromName":
			seed[f.Key] = brand.Name
		default:
			seed[f.Key] = ""
		}
	}
	return seed
}

// MissingRequired returns the keys of required fields whose value is blank.
func MissingRequired(asset AssetTypeConfig, fields map[string]string) []string {
	var missing []string
	for _, f := range asset.Fields {
		if f.Required && strings.TrimFunc(fields[f.Key], unicode.IsSpace) == "" {
			missing = append(missing, f.Key)
		}
	}
	return missing
}
