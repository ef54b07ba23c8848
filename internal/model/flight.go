package model

// Flight is one record returned by the flight backend.
type Flight struct {
	ID   string     `json:"id"`
	Data FlightData `json:"data"`
}

// FlightData holds the flight's fields. The backend omits whatever it does not know.
type FlightData struct {
	FlightNumber           string `json:"flight_number,omitempty"`
	AirlineIATA            string `json:"airline_iata,omitempty"`
	AircraftModel          string `json:"aircraft_model_text,omitempty"`
	OriginAirportName      string `json:"origin_airport_name,omitempty"`
	OriginIATA             string `json:"origin_iata,omitempty"`
	DestinationAirportName string `json:"destination_airport_name,omitempty"`
	DestinationIATA        string `json:"destination_iata,omitempty"`
	DepartureLocal         string `json:"dep_hhmm_local,omitempty"`
	ServiceDate            string `json:"service_date,omitempty"`
	IsPlaceholder          bool   `json:"is_placeholder,omitempty"`
}

// FlightPage is one page of search results.
type FlightPage struct {
	NextPageToken *string  `json:"nextPageToken"`
	Items         []Flight `json:"items"`
	Count         int      `json:"count"`
	OK            bool     `json:"ok"`
}

// HasNext reports whether the backend returned a token for another page.
func (p FlightPage) HasNext() bool {
	return p.NextPageToken != nil && *p.NextPageToken != ""
}

// NextToken returns the next page token, or "".
func (p FlightPage) NextToken() string {
	if p.NextPageToken == nil {
		return ""
	}
	return *p.NextPageToken
}
