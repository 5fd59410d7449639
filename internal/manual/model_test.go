package manual

import "testing"

func TestDetectModel(t *testing.T) {
	tests := []struct {
		filename string
		want     Model
	}{
		{"TDAI-1120-owners-manual.pdf", "TDAI-1120"},
		{"lyngdorf_2170_manual.pdf", "TDAI-2170"},
		{"TDAI-3400.pdf", "TDAI-3400"},
		{"manual-1120.pdf", "TDAI-1120"},
		{"unrelated.pdf", ModelUnknown},
		{"", ModelUnknown},
	}
	for _, tt := range tests {
		if got := DetectModel(tt.filename); got != tt.want {
			t.Errorf("DetectModel(%q): expected %q, got %q", tt.filename, tt.want, got)
		}
	}
}
