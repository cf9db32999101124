package descriptor

import (
	"errors"
	"strings"
	"testing"

	"honnef.co/go/venn"
)

func TestEncodingValidate(t *testing.T) {
	tests := []struct {
		n    int
		code Encoding
		err  string
	}{
		{7, Encoding{"010000000000", "101000001000", "010100010101", "100010101010", "000001010001", "000000100000"}, ""},
		{7, Encoding{"0100000000", "1010001000", "0101010101", "1010101010", "0001010001", "0000100000"}, ""},
		{5, Encoding{"1000", "0101", "1010", "0001"}, ""},
		{3, Encoding{"10", "01"}, ""},
		{5, Encoding{"000001", "010100", "100010", "001000"}, "duplicate rank 20"},
		{5, Encoding{"1000", "1001", "0010", "0100"}, "5 swaps, want 6"},
		{5, Encoding{"100000", "001000", "010101", "000010"}, "1 swaps on row 2, want 2"},
		{3, Encoding{"11", "00"}, "swap 1 repeats row 1"},
		{5, Encoding{"1000", "0101", "1010"}, "3 rows for 5 curves"},
		{5, Encoding{"1000", "0101", "101", "0001"}, "row 3 has 3 columns, want 4"},
		{5, Encoding{"1000", "0101", "1020", "0001"}, "characters other than 0 and 1"},
		{1, Encoding{}, "1 curves"},
	}
	for _, tt := range tests {
		err := tt.code.Validate(tt.n)
		if tt.err == "" {
			if err != nil {
				t.Errorf("%v: unexpected error: %s", tt.code, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%v: expected error %q", tt.code, tt.err)
			continue
		}
		if !strings.Contains(err.Error(), tt.err) {
			t.Errorf("%v: got error %q, want it to contain %q", tt.code, err, tt.err)
		}
		if !errors.Is(err, ErrInvalidEncoding) || !errors.Is(err, venn.ErrInvalidConfig) {
			t.Errorf("%v: error %q doesn't wrap ErrInvalidEncoding and venn.ErrInvalidConfig", tt.code, err)
		}
	}
}

func TestParseEncoding(t *testing.T) {
	got := ParseEncoding(`
		1000
		0101
		1010
		0001
	`)
	want := Encoding{"1000", "0101", "1010", "0001"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %q, want %q", i, got[i], want[i])
		}
	}
	swaps, err := got.Swaps()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []int{1, 3, 2, 3, 2, 4}, swaps)
}
