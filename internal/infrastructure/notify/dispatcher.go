package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/g-inventory/internal/application/inventory"
	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
	"github.com/jhoicas/g-inventory/internal/infrastructure/metrics"
)

var _ inventory.AlertDispatcher = (*Dispatcher)(nil)

// Options tamaño del pool y de la cola.
type Options struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
}

// Dispatcher pool fijo de workers que consume una cola acotada de avisos.
// ALERT_EMAIL se lee del repositorio de configuración en cada envío.
type Dispatcher struct {
	opts     Options
	queue    chan inventory.Alert
	configs  repository.ConfigurationRepository
	channels []Channel
	metrics  *metrics.Metrics
	log      zerolog.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

// NewDispatcher construye el dispatcher; Start lanza los workers.
func NewDispatcher(opts Options, configs repository.ConfigurationRepository, channels []Channel, m *metrics.Metrics, log zerolog.Logger) *Dispatcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 30 * time.Second
	}
	return &Dispatcher{
		opts:     opts,
		queue:    make(chan inventory.Alert, opts.QueueSize),
		configs:  configs,
		channels: channels,
		metrics:  m,
		log:      log,
	}
}

// Start lanza los workers. Llamadas repetidas no tienen efecto.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true
	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	d.log.Info().Int("workers", d.opts.Workers).Int("queue", d.opts.QueueSize).Msg("dispatcher de avisos iniciado")
}

// Enqueue no bloquea. Con la cola llena o el dispatcher cerrado el aviso se descarta.
func (d *Dispatcher) Enqueue(a inventory.Alert) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.metrics.AlertsDropped.Inc()
		return false
	}
	select {
	case d.queue <- a:
		d.metrics.AlertsEnqueued.WithLabelValues(string(a.Kind)).Inc()
		return true
	default:
		d.metrics.AlertsDropped.Inc()
		return false
	}
}

// Depth avisos pendientes.
func (d *Dispatcher) Depth() int {
	return len(d.queue)
}

// Shutdown deja de aceptar avisos, drena la cola y espera a los workers o a ctx.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("dispatcher: %w", ctx.Err())
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for a := range d.queue {
		d.deliver(id, a)
	}
}

// deliver nunca propaga errores: se registran y se cuentan.
func (d *Dispatcher) deliver(worker int, a inventory.Alert) {
	log := d.log.With().
		Int("worker", worker).
		Str("product_id", a.ProductID).
		Str("kind", string(a.Kind)).
		Int64("level", a.Level).
		Logger()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("panic entregando aviso")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.opts.SendTimeout)
	defer cancel()

	to, err := d.recipient(ctx)
	if err != nil {
		log.Error().Err(err).Msg("no se pudo leer ALERT_EMAIL")
	}
	n := Notification{To: to, Subject: a.Subject(), Body: a.Body()}

	for _, ch := range d.channels {
		if err := ch.Send(ctx, n); err != nil {
			d.metrics.AlertsFailed.WithLabelValues(ch.Name()).Inc()
			log.Error().Err(err).Str("channel", ch.Name()).Msg("fallo al enviar aviso de inventario")
			continue
		}
		d.metrics.AlertsSent.WithLabelValues(ch.Name()).Inc()
		log.Info().Str("channel", ch.Name()).Str("to", n.To).Msg("aviso de inventario enviado")
	}
}

func (d *Dispatcher) recipient(ctx context.Context) (string, error) {
	c, err := d.configs.GetByName(ctx, entity.ConfigAlertEmail)
	if err != nil {
		return "", err
	}
	if c == nil || c.Data == "" {
		return "", fmt.Errorf("ALERT_EMAIL ausente: %w", domain.ErrDelivery)
	}
	return c.Data, nil
}
