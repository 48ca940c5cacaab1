package iqair

import "time"

const (
	defaultBaseURL     = "https://api.airvisual.com/v2"
	defaultHTTPTimeout = 10 * time.Second
	defaultCity        = "Stellenbosch"
	defaultState       = "Western Cape"
	defaultCountry     = "South Africa"
)
