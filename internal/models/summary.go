package models

// Summary is the data of GET /summary?period=N.
type Summary struct {
	Metadata struct {
		Period      Count  `json:"period"`
		PeriodLabel string `json:"periodLabel"`
	} `json:"metadata"`
	Overview struct {
		Riders  Tally `json:"riders"`
		Drivers Tally `json:"drivers"`
		Rides   Tally `json:"rides"`
		Users   Tally `json:"users"`
	} `json:"overview"`
	Trends []Trend `json:"trends"`
}

// Tally is a total plus the number added within the selected period.
type Tally struct {
	Total  Count `json:"total"`
	Recent Count `json:"recent"`
}

// Trend is one bucket of the signup series. Date holds the ISO week key
// ("2024-W03") when the API groups by week.
type Trend struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Riders  Count  `json:"riders"`
	Drivers Count  `json:"drivers"`
}
