package commands

import (
	"fmt"
	"strconv"
)

func parseDateIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid date_index %q: %w", arg, err)
	}
	return idx, nil
}

func parsePercent(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return v, nil
}
