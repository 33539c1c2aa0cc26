package config

import "delivery-fixture-generator/internal/domain"

// Major Polish cities with canonical centers and a representative postal prefix.
func DefaultAnchors() []domain.Anchor {
	return []domain.Anchor{
		{Name: "Warszawa", Lat: 52.2297, Lon: 21.0122, PostalPrefix: "00"},
		{Name: "Kraków", Lat: 50.0647, Lon: 19.9450, PostalPrefix: "30"},
		{Name: "Gdańsk", Lat: 54.3520, Lon: 18.6466, PostalPrefix: "80"},
		{Name: "Wrocław", Lat: 51.1079, Lon: 17.0385, PostalPrefix: "50"},
		{Name: "Poznań", Lat: 52.4064, Lon: 16.9252, PostalPrefix: "60"},
		{Name: "Łódź", Lat: 51.7592, Lon: 19.4550, PostalPrefix: "90"},
		{Name: "Szczecin", Lat: 53.4285, Lon: 14.5528, PostalPrefix: "70"},
		{Name: "Lublin", Lat: 51.2465, Lon: 22.5684, PostalPrefix: "20"},
		{Name: "Katowice", Lat: 50.2649, Lon: 19.0238, PostalPrefix: "40"},
		{Name: "Białystok", Lat: 53.1325, Lon: 23.1688, PostalPrefix: "15"},
		{Name: "Gdynia", Lat: 54.5189, Lon: 18.5305, PostalPrefix: "81"},
		{Name: "Bydgoszcz", Lat: 53.1235, Lon: 18.0084, PostalPrefix: "85"},
		{Name: "Rzeszów", Lat: 50.0412, Lon: 21.9991, PostalPrefix: "35"},
	}
}

// Fixed B2B customers; each address becomes the customer's pickup warehouse.
func DefaultCustomers() []CustomerSeed {
	return []CustomerSeed{
		{Name: "Acme Warsaw", Category: "B2B", Contact: "contact@acme.pl", City: "Warszawa", Street: "Aleje Jerozolimskie", PostalCode: "00-001", Lat: 52.2297, Lon: 21.0122},
		{Name: "Krakow Logistics", Category: "B2B", Contact: "info@kraklog.pl", City: "Kraków", Street: "Rynek Główny", PostalCode: "30-001", Lat: 50.0647, Lon: 19.9450},
		{Name: "Gdansk Imports", Category: "B2B", Contact: "sea@gdanskimports.pl", City: "Gdańsk", Street: "Długa", PostalCode: "80-001", Lat: 54.3520, Lon: 18.6466},
		{Name: "Wroclaw Tech", Category: "B2B", Contact: "ops@wroclawtech.pl", City: "Wrocław", Street: "Świdnicka", PostalCode: "50-001", Lat: 51.1079, Lon: 17.0385},
		{Name: "Poznan Distribution", Category: "B2B", Contact: "dist@poznan.pl", City: "Poznań", Street: "Święty Marcin", PostalCode: "60-001", Lat: 52.4064, Lon: 16.9252},
		{Name: "Lodz Textiles", Category: "B2B", Contact: "fabrics@lodz.pl", City: "Łódź", Street: "Piotrkowska", PostalCode: "90-001", Lat: 51.7592, Lon: 19.4560},
		{Name: "Szczecin Maritime", Category: "B2B", Contact: "port@szczecin.pl", City: "Szczecin", Street: "Wały Chrobrego", PostalCode: "70-001", Lat: 53.4285, Lon: 14.5528},
	}
}

func DefaultStreets() []string {
	return []string{
		"Polna", "Leśna", "Słoneczna", "Krótka", "Szkolna",
		"Ogrodowa", "Lipowa", "Brzozowa", "Łąkowa", "Kwiatowa",
		"Główna", "Rynek", "Piłsudskiego", "Mickiewicza", "Kościuszki",
	}
}
