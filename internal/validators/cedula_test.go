package validators

import "testing"

func TestIsCedulaValid(t *testing.T) {
	cases := []struct {
		cedula string
		want   bool
	}{
		{"1710034065", true},
		{"0926687856", true},
		{"1710034064", false}, // dígito verificador alterado
		{"171003406", false},  // corta
		{"17100340656", false},
		{"17A0034065", false},
		{"", false},
		{"0000000000", true}, // suma cero, verificador cero
	}

	for _, tc := range cases {
		if got := IsCedulaValid(tc.cedula); got != tc.want {
			t.Errorf("IsCedulaValid(%q) = %v, want %v", tc.cedula, got, tc.want)
		}
	}
}
