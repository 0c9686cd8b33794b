package cmd

import "testing"

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(devel)", "(devel)"},
		{"v1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"1.4.0", "v1.4.0"},
		{"v2.0.0+dirty", "v2.0.0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := displayVersion(tt.in); got != tt.want {
			t.Errorf("displayVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
