package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// writeCSV creates the parent directory and writes a header plus rows.
func writeCSV(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}

// col renders a float column value.
func col(v float64) string {
	return strconv.FormatFloat(v, 'e', 6, 64)
}

// logSpace returns 10^e for e in [minExp, maxExp].
func logSpace(minExp, maxExp int) []float64 {
	if maxExp < minExp {
		minExp, maxExp = maxExp, minExp
	}
	grid := make([]float64, 0, maxExp-minExp+1)
	for e := minExp; e <= maxExp; e++ {
		grid = append(grid, math.Pow10(e))
	}
	return grid
}

// linSpace returns n evenly spaced points from 0 to max inclusive.
func linSpace(max float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	grid := make([]float64, n)
	step := max / float64(n-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	return grid
}
