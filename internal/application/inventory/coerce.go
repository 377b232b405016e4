package inventory

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// 2^63 es exacto en float64; float64(math.MaxInt64) redondea a este mismo valor.
var twoPow63 = math.Exp2(63)

// coerceInt convierte un valor JSON (decodificado con UseNumber) a entero.
// Acepta números enteros y strings numéricos ("42", " 7 ", "-3").
func coerceInt(v any) (int64, error) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		// Valor exacto: "10.0" y "1e1" son enteros; fuera de rango int64 se rechaza.
		r, ok := new(big.Rat).SetString(x.String())
		if !ok || !r.IsInt() || !r.Num().IsInt64() {
			return 0, fmt.Errorf("invalid integer value %s", x.String())
		}
		return r.Num().Int64(), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid literal for integer: %q", x)
		}
		return n, nil
	case float64:
		// Sin UseNumber encoding/json entrega float64.
		if math.Trunc(x) != x || x >= twoPow63 || x < -twoPow63 {
			return 0, fmt.Errorf("invalid integer value %v", x)
		}
		return int64(x), nil
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// coerceIdentifier convierte el identificador de bodega a string para enlazarlo como VARCHAR2.
func coerceIdentifier(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	default:
		return "", false
	}
}
