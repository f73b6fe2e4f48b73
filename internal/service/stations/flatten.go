package stations

import "github.com/Domenick1991/tripplanner/internal/domain"

// Flatten walks countries, regions and settlements and collects every
// station's yandex code under its title. Stations with no yandex_code key
// are skipped; an empty code is kept as is.
func Flatten(doc StationsDocument) *domain.StationCodes {
	codes := domain.NewStationCodes()
	for _, country := range doc.Countries {
		for _, region := range country.Regions {
			for _, settlement := range region.Settlements {
				for _, station := range settlement.Stations {
					if station.Codes.YandexCode == nil {
						continue
					}
					codes.Add(station.Title, *station.Codes.YandexCode)
				}
			}
		}
	}
	return codes
}
