package qmlcolor

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  Color
	}{
		{"red", true, Color{R: 0xFF, A: 0xFF, valid: true}},
		{"Red", true, Color{R: 0xFF, A: 0xFF, valid: true}},
		{"transparent", true, Color{valid: true}},
		{"#F00", true, Color{R: 0xFF, A: 0xFF, valid: true}},
		{"#FF0000", true, Color{R: 0xFF, A: 0xFF, valid: true}},
		{"#80FF0000", true, Color{R: 0xFF, A: 0x80, valid: true}},
		{"#00336699", true, Color{R: 0x33, G: 0x66, B: 0x99, A: 0x00, valid: true}},
		{"#ZZFF0000", false, Color{}},
		{"#80FF00ZZ", false, Color{}},
		{"#FFFF", false, Color{}},
		{"#FFFFF", false, Color{}},
		{"not-a-color", false, Color{}},
		{"", false, Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Parse(tt.in)
			if got.IsValid() != tt.valid {
				t.Fatalf("Parse(%q).IsValid() = %v, want %v", tt.in, got.IsValid(), tt.valid)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
