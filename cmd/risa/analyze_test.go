package main

import "testing"

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"citations.ris", "citations_analysis.csv"},
		{"/path/to/PRISMA Log .ris", "PRISMA Log _analysis.csv"},
		{"noext", "noext_analysis.csv"},
		{"./dir/export.txt", "export_analysis.csv"},
		{"archive.tar.ris", "archive.tar_analysis.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := outputFileName(tt.input); got != tt.want {
				t.Errorf("outputFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a much longer string than allowed", 10, "a much ..."},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
