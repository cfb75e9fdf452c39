package prober

import (
	"testing"
	"time"
)

func TestParseDisplayDuration(t *testing.T) {
	tables := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second, false},
		{"00:45:00", 45 * time.Minute, false},
		{"45:00", 45 * time.Minute, false},
		{" 0:30 ", 30 * time.Second, false},
		{"102:03", 102*time.Minute + 3*time.Second, false},
		{"", 0, true},
		{"90m", 0, true},
		{"1:02:03:04", 0, true},
	}
	for _, table := range tables {
		got, err := ParseDisplayDuration(table.in)
		if table.wantErr {
			if err == nil {
				t.Errorf("ParseDisplayDuration(%q) expected an error, got %s", table.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDisplayDuration(%q): %v", table.in, err)
			continue
		}
		if got != table.want {
			t.Errorf("ParseDisplayDuration(%q) = %s, want %s", table.in, got, table.want)
		}
	}
}
