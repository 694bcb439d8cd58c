package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/g-inventory/internal/application/inventory"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	domaininv "github.com/jhoicas/g-inventory/internal/domain/inventory"
	"github.com/jhoicas/g-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/g-inventory/internal/infrastructure/metrics"
	"github.com/jhoicas/g-inventory/internal/infrastructure/notify"
)

// recordingChannel guarda lo enviado; si fail != nil devuelve ese error.
type recordingChannel struct {
	mu   sync.Mutex
	sent []notify.Notification
	fail error
}

func (c *recordingChannel) Name() string { return "test" }

func (c *recordingChannel) Send(_ context.Context, n notify.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	c.sent = append(c.sent, n)
	return nil
}

func (c *recordingChannel) Sent() []notify.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]notify.Notification(nil), c.sent...)
}

func configsWithAlertEmail(t *testing.T, email string) *memory.ConfigurationRepo {
	t.Helper()
	repo := memory.NewConfigurationRepository()
	if email != "" {
		c := &entity.Configuration{ID: "cfg-1", Name: entity.ConfigAlertEmail, Data: email}
		c.MarkCreated(time.Now())
		require.NoError(t, repo.Create(context.Background(), c))
	}
	return repo
}

func highAlert() inventory.Alert {
	return inventory.Alert{
		Kind: domaininv.AlertHigh, ProductID: "p1", Description: "Tornillo",
		Level: 20, Minimum: 5, Maximum: 10, DetectedAt: time.Now(),
	}
}

func TestDispatcher_DeliversWithAlertEmailReadAtSendTime(t *testing.T) {
	configs := configsWithAlertEmail(t, "primero@mail.com")
	ch := &recordingChannel{}
	m := metrics.New(prometheus.NewRegistry())
	d := notify.NewDispatcher(notify.Options{Workers: 3, QueueSize: 10}, configs, []notify.Channel{ch}, m, zerolog.Nop())
	d.Start()

	require.True(t, d.Enqueue(highAlert()))
	require.Eventually(t, func() bool { return len(ch.Sent()) == 1 }, 2*time.Second, 10*time.Millisecond)

	got := ch.Sent()[0]
	assert.Equal(t, "primero@mail.com", got.To)
	assert.Contains(t, got.Subject, "cheio")
	assert.Contains(t, got.Body, "Tornillo")

	// el destinatario se vuelve a leer en cada envío
	cfg, _ := configs.GetByName(context.Background(), entity.ConfigAlertEmail)
	cfg.Data = "segundo@mail.com"
	require.NoError(t, configs.Update(context.Background(), cfg))

	require.True(t, d.Enqueue(highAlert()))
	require.Eventually(t, func() bool { return len(ch.Sent()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "segundo@mail.com", ch.Sent()[1].To)

	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.AlertsSent.WithLabelValues("test")))
}

func TestDispatcher_FailuresAreSwallowed(t *testing.T) {
	ch := &recordingChannel{fail: errors.New("smtp caído")}
	m := metrics.New(prometheus.NewRegistry())
	d := notify.NewDispatcher(notify.Options{Workers: 1, QueueSize: 5}, configsWithAlertEmail(t, "a@mail.com"), []notify.Channel{ch}, m, zerolog.Nop())
	d.Start()

	require.True(t, d.Enqueue(highAlert()))
	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AlertsFailed.WithLabelValues("test")))
}

func TestDispatcher_MissingAlertEmail(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	logCh := notify.NewLogChannel(zerolog.Nop())
	d := notify.NewDispatcher(notify.Options{Workers: 1, QueueSize: 5}, configsWithAlertEmail(t, ""), []notify.Channel{logCh}, m, zerolog.Nop())
	d.Start()

	require.True(t, d.Enqueue(highAlert()))
	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AlertsFailed.WithLabelValues("log")))
	assert.Zero(t, testutil.ToFloat64(m.AlertsSent.WithLabelValues("log")))
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	// sin Start: nadie consume la cola
	d := notify.NewDispatcher(notify.Options{Workers: 1, QueueSize: 1}, configsWithAlertEmail(t, "a@mail.com"), nil, m, zerolog.Nop())

	assert.True(t, d.Enqueue(highAlert()))
	assert.False(t, d.Enqueue(highAlert()))
	assert.Equal(t, 1, d.Depth())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AlertsDropped))
}

func TestDispatcher_RejectsAfterShutdown(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	d := notify.NewDispatcher(notify.Options{Workers: 1, QueueSize: 1}, configsWithAlertEmail(t, "a@mail.com"), nil, m, zerolog.Nop())
	d.Start()
	require.NoError(t, d.Shutdown(context.Background()))

	assert.False(t, d.Enqueue(highAlert()))
}
