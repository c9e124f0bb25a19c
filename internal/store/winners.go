package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ExportWinners writes the winners as CSV rows of draw position and number.
func ExportWinners(w io.Writer, winners []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"draw", "number"}); err != nil {
		return err
	}
	for i, n := range winners {
		if err := cw.Write([]string{strconv.Itoa(i + 1), strconv.Itoa(n)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteWinnersFile(path string, winners []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export winners: %w", err)
	}
	if err := ExportWinners(f, winners); err != nil {
		_ = f.Close()
		return fmt.Errorf("export winners: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export winners: %w", err)
	}
	return nil
}
