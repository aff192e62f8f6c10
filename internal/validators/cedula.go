package validators

// IsCedulaValid verifica una cédula ecuatoriana de 10 dígitos con el
// algoritmo módulo 10: los dígitos en posición impar (base 1) se
// duplican, restando 9 si el producto supera 9, y el dígito verificador
// debe cerrar la suma al siguiente múltiplo de 10.
func IsCedulaValid(cedula string) bool {
	if len(cedula) != 10 {
		return false
	}

	digits := make([]int, 10)
	for i, r := range cedula {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		d := digits[i]
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	check := (10 - sum%10) % 10
	return check == digits[9]
}
