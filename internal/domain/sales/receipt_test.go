package sales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akax-pajomel/ventas-api/internal/domain/sales"
)

func TestNextReceiptNumber(t *testing.T) {
	cases := []struct {
		name string
		last string
		want string
	}{
		{"prefijo con dígitos finales", "REC-1042", "REC-1043"},
		{"solo número", "1001", "1002"},
		{"vacío arranca en 1", "", "1"},
		{"sin dígitos finales", "SERIE-A", "1"},
		{"espacios alrededor", "  REC-0007  ", "REC-8"},
		{"dígitos en medio y al final", "A1B2", "A1B3"},
		{"recibo de un solo dígito", "REC-9", "REC-10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sales.NextReceiptNumber(tc.last))
		})
	}
}

// La sugerencia es determinista: con la misma entrada siempre sale lo mismo.
func TestNextReceiptNumber_Idempotente(t *testing.T) {
	first := sales.NextReceiptNumber("REC-500")
	second := sales.NextReceiptNumber("REC-500")
	assert.Equal(t, first, second)
}

func TestReceiptLabel(t *testing.T) {
	assert.Equal(t, "REC-1042", sales.ReceiptLabel("REC-1042", "ignorado"))
	assert.Equal(t, "REC-abcd1234", sales.ReceiptLabel("", "abcd1234-e89b-12d3"))
	assert.Equal(t, "REC-xyz", sales.ReceiptLabel("", "xyz"))
}
