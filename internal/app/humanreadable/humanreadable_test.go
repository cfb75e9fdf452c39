package humanreadable

import (
	"fmt"
	"testing"
)

func ExampleIEC() {
	fmt.Println(IEC(50000))
	// Output: 48.8 KiB
}

func ExampleSI() {
	fmt.Println(SI(50000))
	// Output: 50.0 kB
}

func TestIEC(t *testing.T) {
	tables := []struct {
		x int64
		h string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{50000, "48.8 KiB"},
		{1500000, "1.4 MiB"},
		{1900000000, "1.8 GiB"},
		{20000000000000, "18.2 TiB"},
	}
	for _, table := range tables {
		if output := IEC(table.x); output != table.h {
			t.Errorf("IEC(%d) was incorrect, got: %s, want: %s", table.x, output, table.h)
		}
	}
}

func TestSI(t *testing.T) {
	tables := []struct {
		x int64
		h string
	}{
		{999, "999 B"},
		{1023, "1.0 kB"},
		{12350, "12.3 kB"},
		{1500000, "1.5 MB"},
		{1900000000, "1.9 GB"},
		{20000000000000, "20.0 TB"},
	}
	for _, table := range tables {
		if output := SI(table.x); output != table.h {
			t.Errorf("SI(%d) was incorrect, got: %s, want: %s", table.x, output, table.h)
		}
	}
}
