package domain

// DayLedger is everything a sink recorded for one day. Gold is the day's
// produce value minus its costs.
type DayLedger struct {
	Day     int     `json:"day"`
	Produce []Stack `json:"produce,omitempty"`
	Costs   []Stack `json:"costs,omitempty"`
	Gold    int     `json:"gold"`
}
