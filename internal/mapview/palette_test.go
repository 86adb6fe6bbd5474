package mapview

import "testing"

func TestResolveColor(t *testing.T) {
	cases := []struct {
		in      string
		hex     string
		wantErr bool
	}{
		{in: "red", hex: "#e53935"},
		{in: " Blue ", hex: "#1e88e5"},
		{in: "#00ff00", hex: "#00ff00"},
		{in: "#fff", hex: "#ffffff"},
		{in: "chartreuse-ish", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		c, err := ResolveColor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ResolveColor(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveColor(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got := c.Hex(); got != tc.hex {
			t.Errorf("ResolveColor(%q) = %s, want %s", tc.in, got, tc.hex)
		}
	}
}

func TestSegmentColorWraps(t *testing.T) {
	p := []string{"red", "blue", "green"}
	for i, want := range []string{"red", "blue", "green", "red", "blue"} {
		if got := SegmentColor(p, i); got != want {
			t.Errorf("SegmentColor(%d) = %s, want %s", i, got, want)
		}
	}
}
