package inventory

// AlertDispatcher entrega avisos de forma asíncrona.
// Enqueue no bloquea: devuelve false si el aviso se descartó (cola llena o cerrada).
type AlertDispatcher interface {
	Enqueue(alert Alert) bool
}
