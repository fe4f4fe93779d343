package models

// WeatherLocation describes the place a weather report refers to.
type WeatherLocation struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	LocalTime string  `json:"localtime"`
}

// WeatherCondition is a textual condition with its icon URL.
type WeatherCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// WeatherCurrent is the current-conditions block of a weather report.
type WeatherCurrent struct {
	TempC      float64          `json:"temp_c"`
	TempF      float64          `json:"temp_f"`
	Condition  WeatherCondition `json:"condition"`
	WindKph    float64          `json:"wind_kph"`
	Humidity   int              `json:"humidity"`
	FeelsLikeC float64          `json:"feelslike_c"`
	UV         float64          `json:"uv"`
}

// WeatherReport is a current-conditions report for one location
// swagger:model WeatherReport
type WeatherReport struct {
	Location WeatherLocation `json:"location"`
	Current  WeatherCurrent  `json:"current"`
}

// FlagURLs holds flag image URLs at the fixed CDN sizes
// swagger:model FlagURLs
type FlagURLs struct {
	// example: https://flagcdn.com/w40/br.png
	Small string `json:"small"`
	// example: https://flagcdn.com/w160/br.png
	Medium string `json:"medium"`
	// example: https://flagcdn.com/w320/br.png
	Large string `json:"large"`
	// example: https://flagcdn.com/w640/br.png
	XLarge string `json:"xlarge"`
	// example: https://flagcdn.com/br.svg
	SVG string `json:"svg"`
}
