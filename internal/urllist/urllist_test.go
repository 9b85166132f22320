package urllist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "Two URLs separated by blank lines",
			content: "\nhttps://events.racetime.pro/en/event/1022/competition/6422/results\n\n\n" +
				"https://events.racetime.pro/en/event/7/competition/31/results\n\n",
			want: []string{
				"https://events.racetime.pro/en/event/1022/competition/6422/results",
				"https://events.racetime.pro/en/event/7/competition/31/results",
			},
		},
		{
			name:    "Lines trimmed of surrounding whitespace",
			content: "  https://a.example/x  \n\t\nhttps://b.example/y\n",
			want:    []string{"https://a.example/x", "https://b.example/y"},
		},
		{
			name:    "Only blank lines",
			content: "\n \n\t\n",
			want:    []string{},
		},
		{
			name:    "Empty file",
			content: "",
			want:    []string{},
		},
		{
			name:    "No trailing newline",
			content: "https://a.example/x",
			want:    []string{"https://a.example/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir, err := os.MkdirTemp("", "urllist-test-*")
			if err != nil {
				t.Fatalf("Failed to create temp dir: %v", err)
			}
			defer os.RemoveAll(tmpDir)

			path := filepath.Join(tmpDir, "urls.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write list file: %v", err)
			}

			r, err := Open(path)
			if err != nil {
				t.Fatalf("Open() unexpected error: %v", err)
			}
			defer r.Close()

			got := []string{}
			for r.Next() {
				got = append(got, r.URL())
			}
			if err := r.Err(); err != nil {
				t.Fatalf("Err() = %v, want nil", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("read %d urls, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("url %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOpen_MissingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "urllist-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	if _, err := Open(filepath.Join(tmpDir, "absent.txt")); err == nil {
		t.Error("Open() expected error for missing file, got nil")
	}
}
