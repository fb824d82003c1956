package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestLogSpace(t *testing.T) {
	grid := logSpace(-3, 0)
	want := []float64{1e-3, 1e-2, 1e-1, 1.0}
	if len(grid) != len(want) {
		t.Fatalf("len = %d, want %d", len(grid), len(want))
	}
	for i, v := range want {
		if grid[i] != v {
			t.Errorf("grid[%d] = %g, want %g", i, grid[i], v)
		}
	}

	// Reversed bounds are swapped, not rejected.
	if got := logSpace(0, -3); len(got) != 4 || got[0] != 1e-3 {
		t.Errorf("reversed bounds: got %v", got)
	}
}

func TestLinSpace(t *testing.T) {
	grid := linSpace(1.0, 5)
	if len(grid) != 5 {
		t.Fatalf("len = %d, want 5", len(grid))
	}
	if grid[0] != 0 {
		t.Errorf("first point = %g, want 0", grid[0])
	}
	if grid[4] != 1.0 {
		t.Errorf("last point = %g, want 1.0", grid[4])
	}

	// Degenerate point counts fall back to the two endpoints.
	if got := linSpace(2.0, 1); len(got) != 2 || got[1] != 2.0 {
		t.Errorf("degenerate count: got %v", got)
	}
}

func TestWriteCSVCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	header := []string{"a", "b"}
	rows := [][]string{{"1", "2"}, {"3", "4"}}

	if err := writeCSV(path, header, rows); err != nil {
		t.Fatalf("writeCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("read %d lines, want 3", len(lines))
	}
	if lines[0][0] != "a" || lines[2][1] != "4" {
		t.Errorf("unexpected content: %v", lines)
	}
}

func TestReadExperimentCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiments.csv")
	if err := writeExperimentTemplate(path); err != nil {
		t.Fatalf("template write failed: %v", err)
	}

	records, err := readExperimentCSV(path)
	if err != nil {
		t.Fatalf("readExperimentCSV failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.Name != "molecule_interferometry" {
		t.Errorf("name = %q", first.Name)
	}
	if first.Mass != 1e-23 {
		t.Errorf("mass = %g, want 1e-23", first.Mass)
	}
	if first.Env.Present() {
		t.Errorf("empty gamma_env cell should mean an absent channel")
	}

	second := records[1]
	if !second.Env.Present() || second.Env.Rate() != 1e-2 {
		t.Errorf("gamma_env = %v/%g, want present with rate 1e-2", second.Env.Present(), second.Env.Rate())
	}
}
