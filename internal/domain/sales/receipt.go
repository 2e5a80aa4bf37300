// Package sales contiene los servicios de dominio del libro de ventas:
// sugerencia de número de recibo y cálculo de totales y estado de pago.
package sales

import (
	"regexp"
	"strconv"
	"strings"
)

var trailingDigits = regexp.MustCompile(`(\d+)$`)

// NextReceiptNumber deriva la sugerencia de recibo a partir del recibo de la
// venta registrada más recientemente: toma la corrida de dígitos final,
// incrementa en 1 y conserva el prefijo no numérico.
//
//	"REC-1042" -> "REC-1043"
//	"1001"     -> "1002"
//	""         -> "1"
//	"SERIE-A"  -> "1" (sin dígitos finales ni valor numérico: se parte de 0)
//
// Es una sugerencia pura: no reserva ni bloquea el número.
func NextReceiptNumber(last string) string {
	last = strings.TrimSpace(last)

	prefix := ""
	number := 0

	if m := trailingDigits.FindStringIndex(last); m != nil {
		n, err := strconv.Atoi(last[m[0]:m[1]])
		if err == nil {
			number = n
			prefix = last[:m[0]]
		}
	} else if last != "" {
		// Sin corrida final de dígitos: intentar tratar todo el string como número
		if n, err := strconv.Atoi(last); err == nil {
			number = n
		}
	}

	return prefix + strconv.Itoa(number+1)
}

// ReceiptLabel número de recibo a mostrar en documentos: el registrado o,
// si la venta no tiene, uno derivado del ID.
func ReceiptLabel(receiptNumber, saleID string) string {
	if receiptNumber != "" {
		return receiptNumber
	}
	if len(saleID) > 8 {
		saleID = saleID[:8]
	}
	return "REC-" + saleID
}
