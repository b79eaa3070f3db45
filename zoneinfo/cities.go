package zoneinfo

// The zone - city table was created by selecting major cities from each time
// zone, following http://en.wikipedia.org/wiki/List_of_UTC_time_offsets and
// verified against http://www.timeanddate.com/worldclock/.
// No DST is handled here; the identifiers are fixed offsets used for display.
var cityTable = []struct {
	zoneID string
	cities string
}{
	{"UTC-12:00", "Baker Island, Howland Island"},
	{"UTC-11:00", "American Samoa, Niue"},
	{"UTC-10:00", "Hawaii, Cook Islands"},
	{"UTC-09:30", "Marquesas Islands"},
	{"UTC-09:00", "Gambier Islands, Alaska"},
	{"UTC-08:00", "Los Angeles, Vancouver, Tijuana"},
	{"UTC-07:00", "Phoenix, Calgary, Ciudad Juárez"},
	{"UTC-06:00", "Chicago, Guatemala City, Mexico City, San José, San Salvador, Tegucigalpa, Winnipeg"},
	{"UTC-05:00", "New York, Lima, Toronto, Bogotá, Havana, Kingston"},
	{"UTC-04:30", "Caracas"},
	{"UTC-04:00", "Santiago, La Paz, San Juan de Puerto Rico, Manaus, Halifax"},
	{"UTC-03:30", "St. John's"},
	{"UTC-03:00", "Buenos Aires, Montevideo, São Paulo"},
	{"UTC-02:00", "Fernando de Noronha, South Georgia and the South Sandwich Islands"},
	{"UTC-01:00", "Cape Verde, Greenland, Azores islands"},
	{"UTC", "Accra, Abidjan, Casablanca, Dakar, Dublin, Lisbon, London"},
	{"UTC+01:00", "Belgrade, Berlin, Brussels, Lagos, Madrid, Paris, Rome, Tunis, Vienna, Warsaw"},
	{"UTC+02:00", "Athens, Sofia, Cairo, Kiev, Istanbul, Beirut, Helsinki, Jerusalem, Johannesburg, Bucharest"},
	{"UTC+03:00", "Nairobi, Baghdad, Doha, Khartoum, Minsk, Riyadh"},
	{"UTC+03:30", "Tehran"},
	{"UTC+04:00", "Baku, Dubai, Moscow"},
	{"UTC+04:30", "Kabul"},
	{"UTC+05:00", "Karachi, Tashkent"},
	{"UTC+05:30", "Colombo, Delhi"},
	{"UTC+05:45", "Kathmandu"},
	{"UTC+06:00", "Almaty, Dhaka, Yekaterinburg"},
	{"UTC+06:30", "Yangon"},
	{"UTC+07:00", "Jakarta, Bangkok, Novosibirsk, Hanoi"},
	{"UTC+08:00", "Perth, Beijing, Manila, Singapore, Kuala Lumpur, Denpasar, Krasnoyarsk"},
	{"UTC+08:45", "Eucla"},
	{"UTC+09:00", "Seoul, Tokyo, Pyongyang, Ambon, Irkutsk"},
	{"UTC+09:30", "Adelaide"},
	{"UTC+10:00", "Canberra, Yakutsk, Port Moresby"},
	{"UTC+10:30", "Lord Howe Islands"},
	{"UTC+11:00", "Vladivostok, Noumea"},
	{"UTC+12:00", "Auckland, Suva"},
	{"UTC+12:45", "Chatham Islands"},
	{"UTC+13:00", "Phoenix Islands, Tokelau, Tonga"},
	{"UTC+14:00", "Line Islands"},
}

// ZoneValues returns the catalog zones in table order. Empty before Bootstrap.
func ZoneValues() []Zone {
	zones := make([]Zone, len(catalog))
	copy(zones, catalog)
	return zones
}

// CitiesForZone returns the major cities for a catalog zone, or "" when the
// zone is not in the catalog.
func CitiesForZone(zone Zone) string {
	return citiesByID[zone.ID()]
}
