package constants

import (
	"os"
	"strconv"
)

// Arduino Uno leaves roughly this much for the two tables
const DefaultBudget = 2000

// 120 BPM
const DefaultTempo = 500000

// frequency table entry is a uint16
const FrequencySize = 2

// uint16 duration + uint16 end + 2 index bytes
const NoteSize = 6

const MaxFieldValue = 1<<16 - 1

func GetOutDir() string {
	path := os.Getenv("BEEPTABLE_OUT_DIR")
	if path != "" {
		return path
	}
	return "."
}

func GetBudget() int {
	raw := os.Getenv("BEEPTABLE_BUDGET")
	if raw == "" {
		return DefaultBudget
	}
	budget, err := strconv.Atoi(raw)
	if err != nil || budget < 0 {
		return DefaultBudget
	}
	return budget
}

// GetRegistryEndpoint returns "" when no registry is configured.
func GetRegistryEndpoint() string {
	return os.Getenv("BEEPTABLE_REGISTRY_ENDPOINT")
}

func GetRegistryTable() string {
	table := os.Getenv("BEEPTABLE_REGISTRY_TABLE")
	if table != "" {
		return table
	}
	return "beeptable-conversions"
}
