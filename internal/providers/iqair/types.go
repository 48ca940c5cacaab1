package iqair

const providerName = "iqair"

type cityResponse struct {
	Status string   `json:"status"`
	Data   cityData `json:"data"`
}

type cityData struct {
	City    string      `json:"city"`
	State   string      `json:"state"`
	Country string      `json:"country"`
	Current currentData `json:"current"`
}

type currentData struct {
	Pollution pollutionData `json:"pollution"`
	Weather   weatherData   `json:"weather"`
}

type pollutionData struct {
	Timestamp string `json:"ts"`
	AQIUS     int    `json:"aqius"`
	MainUS    string `json:"mainus"`
	AQICN     int    `json:"aqicn"`
	MainCN    string `json:"maincn"`
}

type weatherData struct {
	Timestamp   string  `json:"ts"`
	Temperature float64 `json:"tp"`
	Pressure    float64 `json:"pr"`
	Humidity    float64 `json:"hu"`
	WindSpeed   float64 `json:"ws"`
	WindDegree  float64 `json:"wd"`
	Icon        string  `json:"ic"`
}
