package model

import "time"

type PointTotals struct {
	Day   int `json:"day"`
	Week  int `json:"week"`
	Month int `json:"month"`
	All   int `json:"all"`
}

// DayCell is one square of a month grid. Day is zero for padding cells that
// fall outside the month.
type DayCell struct {
	Day    int `json:"day"`
	Points int `json:"points"`
}

func (d DayCell) Blank() bool {
	return d.Day == 0
}

type Calendar struct {
	Month time.Time   `json:"month"`
	Weeks [][]DayCell `json:"weeks"`
	Prev  time.Time   `json:"prev"`
	Next  time.Time   `json:"next"`
}

// Series holds parallel slices of day labels and completion counts.
type Series struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// ChartData is the payload shape consumed by the graph page.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label       string  `json:"label"`
	Data        []int   `json:"data"`
	Fill        bool    `json:"fill"`
	BorderColor string  `json:"borderColor"`
	Tension     float64 `json:"tension"`
}
