package strchunk

import "testing"

func TestIsBoundary(t *testing.T) {
	cases := []struct {
		name  string
		s     string
		index int
		want  bool
	}{
		{"empty start", "", 0, true},
		{"ascii start", "Hello", 0, true},
		{"ascii interior", "Hello", 3, true},
		{"ascii end", "Hello", 5, true},
		{"past end", "Hello", 6, false},
		{"negative", "Hello", -1, false},
		{"cyrillic lead", "Привет", 2, true},
		{"cyrillic continuation", "Привет", 3, false},
		{"cyrillic end", "Привет", 12, true},
		{"four byte lead", "a𝄞b", 1, true},
		{"four byte second", "a𝄞b", 2, false},
		{"four byte third", "a𝄞b", 3, false},
		{"four byte fourth", "a𝄞b", 4, false},
		{"after four byte", "a𝄞b", 5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBoundary(tc.s, tc.index); got != tc.want {
				t.Fatalf("IsBoundary(%q, %d): got %v want %v", tc.s, tc.index, got, tc.want)
			}
		})
	}
}
