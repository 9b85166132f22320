package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/akarlsons/racetime-export/internal/results"
)

func TestWriteFile_RoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "export-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	table := results.New(
		results.Row{"Pos", "Name", "Club", "Time"},
		[]results.Row{
			{"1", "Alice Andersson", "CK Hymer, Sweden", "1:02:03"},
			{"2", `Bob "Flash" Berg`, "Team Nord", "1:05:44"},
			{"3", "Carin Dahl", "Velo\nCC", "1:07:12"},
			{"4", "", "", ""},
		},
	)

	path := filepath.Join(tmpDir, "race_1022.csv")
	if err := WriteFile(table, path); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read written CSV: %v", err)
	}

	want := [][]string{
		{"Pos", "Name", "Club", "Time"},
		{"1", "Alice Andersson", "CK Hymer, Sweden", "1:02:03"},
		{"2", `Bob "Flash" Berg`, "Team Nord", "1:05:44"},
		{"3", "Carin Dahl", "Velo\nCC", "1:07:12"},
		{"4", "", "", ""},
	}

	if len(records) != len(want) {
		t.Fatalf("read %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if len(records[i]) != len(want[i]) {
			t.Fatalf("record %d has %d fields, want %d", i, len(records[i]), len(want[i]))
		}
		for j := range want[i] {
			if records[i][j] != want[i][j] {
				t.Errorf("record %d field %d = %q, want %q", i, j, records[i][j], want[i][j])
			}
		}
	}
}

func TestWriteFile_Overwrite(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "export-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "out.csv")

	big := results.New(results.Row{"Pos", "Name"}, []results.Row{
		{"1", "Alice"},
		{"2", "Bob"},
		{"3", "Carin"},
	})
	if err := WriteFile(big, path); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	small := results.New(results.Row{"Pos"}, []results.Row{
		{"1"},
	})
	if err := WriteFile(small, path); err != nil {
		t.Fatalf("WriteFile() on existing file unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if got, want := string(data), "Pos\n1\n"; got != want {
		t.Errorf("overwritten file = %q, want %q", got, want)
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "export-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	table := results.New(results.Row{"Pos"}, nil)
	path := filepath.Join(tmpDir, "no-such-dir", "out.csv")

	if err := WriteFile(table, path); err == nil {
		t.Error("WriteFile() expected error for missing directory, got nil")
	}
}

func TestWriter(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "export-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Point at a directory that does not exist yet
	outDir := filepath.Join(tmpDir, "exports", "2026")
	w, err := NewWriter(outDir)
	if err != nil {
		t.Fatalf("NewWriter() unexpected error: %v", err)
	}

	table := results.New(results.Row{"Pos", "Name"}, []results.Row{
		{"1", "Alice"},
	})

	path, err := w.Write(table, "race_7.csv")
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if want := filepath.Join(outDir, "race_7.csv"); path != want {
		t.Errorf("Write() path = %q, want %q", path, want)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("written file not found: %v", err)
	}
}
