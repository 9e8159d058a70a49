package assemble

import "strings"

// dialCodeToISO maps the phone country codes offered by the registration
// forms to ISO 3166-1 alpha-2 country codes.
var dialCodeToISO = map[string]string{
	"+43":  "AT",
	"+32":  "BE",
	"+1":   "US",
	"+41":  "CH",
	"+420": "CZ",
	"+49":  "DE",
	"+45":  "DK",
	"+34":  "ES",
	"+358": "FI",
	"+33":  "FR",
	"+44":  "GB",
	"+30":  "GR",
	"+36":  "HU",
	"+353": "IE",
	"+39":  "IT",
	"+52":  "MX",
	"+31":  "NL",
	"+47":  "NO",
	"+48":  "PL",
	"+351": "PT",
	"+40":  "RO",
	"+421": "SK",
	"+46":  "SE",
}

// CountryISO resolves a dial code to its ISO country code. Unknown dial
// codes yield "" so the payload carries no country rather than a guess.
func CountryISO(dialCode string) string {
	return dialCodeToISO[strings.TrimSpace(dialCode)]
}
