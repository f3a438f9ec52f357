package config

type Settings struct {
	MonPort string `yaml:"MON_PORT"`

	SatelliteSource string `yaml:"SATELLITE_SOURCE"`
	SatelliteID     int    `yaml:"SATELLITE_ID"`
	WhereTheISSURL  string `yaml:"WHERE_THE_ISS_URL"`
	TLEURL          string `yaml:"TLE_URL"`

	Geolocation     string  `yaml:"GEOLOCATION"`
	GeolocationURL  string  `yaml:"GEOLOCATION_URL"`
	GeolocationWait int     `yaml:"GEOLOCATION_TIMEOUT_SECONDS"`
	UserLatitude    float64 `yaml:"USER_LATITUDE"`
	UserLongitude   float64 `yaml:"USER_LONGITUDE"`

	DistanceFormula string `yaml:"DISTANCE_FORMULA"`
	Unit            string `yaml:"UNIT"`
}
