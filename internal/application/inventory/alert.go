package inventory

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	domaininv "github.com/jhoicas/g-inventory/internal/domain/inventory"
)

const signature = "Este é um e-mail automático do G Inventory System."

// Alert aviso de umbral para un producto.
type Alert struct {
	Kind        domaininv.AlertKind
	ProductID   string
	Description string
	Level       int64
	Minimum     int
	Maximum     int
	DetectedAt  time.Time
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Subject asunto del aviso.
func (a Alert) Subject() string {
	if a.Kind == domaininv.AlertHigh {
		return printer.Sprintf("Alerta de estoque cheio! (%s)", a.Description)
	}
	return printer.Sprintf("Alerta de estoque baixo! (%s)", a.Description)
}

// Body cuerpo del aviso con el umbral superado y el nivel actual.
func (a Alert) Body() string {
	if a.Kind == domaininv.AlertHigh {
		return printer.Sprintf("Alerta de estoque cheio para o produto: %s\n\nO estoque máximo esperado é %d e o atual é %d.\n\n%s",
			a.Description, a.Maximum, a.Level, signature)
	}
	return printer.Sprintf("Alerta de estoque baixo para o produto: %s\n\nO estoque mínimo esperado é %d e o atual é %d.\n\n%s",
		a.Description, a.Minimum, a.Level, signature)
}
