package cli

import (
	"testing"
	"time"
)

func TestParseSince(t *testing.T) {
	now := time.Date(2008, time.March, 27, 22, 55, 48, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "hours ago",
			input:    "2h ago",
			expected: "Thu, 27 Mar 2008 20:55:48 UTC",
		},
		{
			name:     "minutes ago",
			input:    "30m ago",
			expected: "Thu, 27 Mar 2008 22:25:48 UTC",
		},
		{
			name:     "days ago",
			input:    "1d ago",
			expected: "Wed, 26 Mar 2008 22:55:48 UTC",
		},
		{
			name:     "yesterday",
			input:    "yesterday",
			expected: "Wed, 26 Mar 2008 00:00:00 UTC",
		},
		{
			name:     "calendar date",
			input:    "2008-03-01",
			expected: "Sat, 01 Mar 2008 00:00:00 UTC",
		},
		{
			name:     "rfc3339 passthrough",
			input:    "2008-03-27T10:00:00Z",
			expected: "Thu, 27 Mar 2008 10:00:00 UTC",
		},
		{
			name:     "http date passthrough",
			input:    "Tue, 27 Mar 2007 22:55:48 UTC",
			expected: "Tue, 27 Mar 2007 22:55:48 UTC",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "nonsense",
			input:   "sometime soon",
			wantErr: true,
		},
		{
			name:    "zero count",
			input:   "0h ago",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSince(tt.input, now)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSince(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSince(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSince(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
