// Package wmo maps WMO weather interpretation codes to short descriptions.
package wmo

// Unknown is returned for codes that are not in the table.
const Unknown = "Unknown"

var descriptions = map[int]string{
	0:  "Clear",
	1:  "Clear",
	2:  "Partly cloudy",
	3:  "Cloudy",
	45: "Fog",
	48: "Rime fog",
	51: "Drizzle",
	53: "Drizzle",
	55: "Drizzle",
	61: "Rain",
	63: "Rain",
	65: "Heavy rain",
	71: "Snow",
	73: "Snow",
	75: "Snow",
	80: "Showers",
	95: "Thunderstorm",
	96: "Thunderstorm",
	99: "Thunderstorm",
}

// Describe returns the description for a weather code.
func Describe(code int) string {
	if desc, ok := descriptions[code]; ok {
		return desc
	}
	return Unknown
}
