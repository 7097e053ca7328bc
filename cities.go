package tzclock

// CityTimezoneEntry pairs a city display name with its IANA timezone identifier.
type CityTimezoneEntry struct {
	City     string
	Timezone string
}

// cityTable is the fixed city list offered by the dropdown, in display order.
// Lahore and Karachi intentionally share a zone.
var cityTable = [...]CityTimezoneEntry{
	{City: "New York", Timezone: "America/New_York"},
	{City: "London", Timezone: "Europe/London"},
	{City: "Tokyo", Timezone: "Asia/Tokyo"},
	{City: "Mumbai", Timezone: "Asia/Kolkata"},
	{City: "Lahore", Timezone: "Asia/Karachi"},
	{City: "Karachi", Timezone: "Asia/Karachi"},
}

// Cities returns a copy of the fixed city list.
func Cities() []CityTimezoneEntry {
	out := make([]CityTimezoneEntry, len(cityTable))
	copy(out, cityTable[:])
	return out
}

// DefaultTimezone returns the zone selected when a control is initialized,
// which is the zone of the first city in the list.
func DefaultTimezone() string {
	return cityTable[0].Timezone
}

// IsListedTimezone reports whether zone belongs to at least one city in the list.
func IsListedTimezone(zone string) bool {
	for _, e := range cityTable {
		if e.Timezone == zone {
			return true
		}
	}
	return false
}

// TimezoneForCity returns the zone of the named city. The match is exact.
func TimezoneForCity(city string) (string, bool) {
	for _, e := range cityTable {
		if e.City == city {
			return e.Timezone, true
		}
	}
	return "", false
}
