package main

import (
	"fmt"
	"os"
	"time"
)

func wallClockMs() int64 {
	return time.Now().UnixMilli()
}

// statRegion returns the size in bytes of the file at path, or an error
// if it does not exist or cannot be stat'd.
func statRegion(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("region %q not found: %w", path, err)
	}
	return fi.Size(), nil
}
