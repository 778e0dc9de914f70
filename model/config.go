package model

// Config drives one conversion run.
type Config struct {
	Filename string
	Tracks   []int

	// total bytes available on the device for both tables
	Budget int
	OutDir string

	ZeroVelocityOff bool
	AllDeltas       bool
}

type ConversionRecord struct {
	Id        string
	Input     string
	Output    string
	LenNotes  int
	TableSize int
	Budget    int
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
