package zoned

import (
	"slices"

	"golang.org/x/text/language"
)

// zoneEntry is one row of the IANA zone1970.tab table.
type zoneEntry struct {
	name      string
	countries []string
	comment   string
}

// Zone describes a region zone from the built-in catalogue.
type Zone struct {
	ID        string   // Zone database ID (e.g., "Europe/Budapest").
	Countries []string // ISO 3166 codes of the countries it covers, most populous first.
	Comment   string   // Disambiguation within a country with several zones.
}

// AvailableZoneIDs returns the region zone IDs of the built-in catalogue,
// sorted. Every ID resolves with ResolveZone where the platform zone
// database is at least as recent as the catalogue.
func AvailableZoneIDs() []string {
	ids := make([]string, len(builtinZones))
	for i, z := range builtinZones {
		ids[i] = z.name
	}
	slices.Sort(ids)
	return ids
}

// ZonesForCountry returns the zones covering an ISO 3166 country code
// (case-insensitive), in catalogue order. Unknown codes return nil.
func ZonesForCountry(code string) []Zone {
	region, err := language.ParseRegion(code)
	if err != nil {
		return nil
	}
	cc := region.String()

	var result []Zone
	for _, z := range builtinZones {
		if slices.Contains(z.countries, cc) {
			result = append(result, Zone{
				ID:        z.name,
				Countries: slices.Clone(z.countries),
				Comment:   z.comment,
			})
		}
	}
	return result
}
