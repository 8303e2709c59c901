package stock

import "fmt"

// Outcome es el resultado de la compuerta de disponibilidad.
type Outcome string

const (
	Accepted Outcome = "accepted"
	// Warned no bloquea: la salida supera el saldo y el saldo quedará negativo.
	Warned   Outcome = "warned"
	Rejected Outcome = "rejected"
)

// Decision es el veredicto de la compuerta junto con un motivo legible.
type Decision struct {
	Outcome   Outcome
	Reason    string
	Requested int64
	Remaining int64
}

// Allowed indica si la línea puede guardarse (aceptada o con advertencia).
func (d Decision) Allowed() bool {
	return d.Outcome != Rejected
}

// Evaluate decide sobre una cantidad solicitada contra el saldo actual.
// Una cantidad <= 0 siempre se rechaza; superar el saldo solo advierte.
func Evaluate(requested, remaining int64) Decision {
	d := Decision{Requested: requested, Remaining: remaining}
	switch {
	case requested <= 0:
		d.Outcome = Rejected
		d.Reason = "la cantidad debe ser un entero positivo"
	case requested > remaining:
		d.Outcome = Warned
		d.Reason = fmt.Sprintf("la cantidad solicitada (%d) supera el saldo disponible (%d); el saldo quedará en %d",
			requested, remaining, remaining-requested)
	default:
		d.Outcome = Accepted
		d.Reason = "disponible"
	}
	return d
}

// EvaluateInbound aplica a entradas y solicitudes de compra, donde el saldo
// no limita: solo se valida que la cantidad sea positiva.
func EvaluateInbound(requested int64) Decision {
	if requested <= 0 {
		return Decision{Outcome: Rejected, Reason: "la cantidad debe ser un entero positivo", Requested: requested}
	}
	return Decision{Outcome: Accepted, Reason: "entrada", Requested: requested}
}

// LowPriority indica si una combinación debe mostrarse con prioridad baja en
// los selectores. Nunca se deshabilita por falta de saldo.
func LowPriority(remaining int64) bool {
	return remaining <= 0
}
