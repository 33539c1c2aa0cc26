package domain

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Report whether the coordinates fall inside the valid WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Anchor is a fixed reference city used as the center of bounded random placement.
type Anchor struct {
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	PostalPrefix string  `json:"postal_prefix"`
}

func (a Anchor) Coordinates() Coordinates { return Coordinates{Lat: a.Lat, Lon: a.Lon} }
