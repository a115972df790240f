package worker

import (
	"log/slog"
	"time"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/notifications"
)

// Sender delivers a single notification. The webhook client satisfies
// this; tests substitute their own.
type Sender interface {
	Send(n notifications.Notification) error
}

// Dispatcher queues notifications and delivers them from a background
// goroutine with bounded retries. Enqueueing never blocks a transfer: when
// the queue is full the notification is dropped and logged. A failed or
// dropped notification never rolls back the transfer it belongs to.
type Dispatcher struct {
	sender      Sender
	queue       chan notifications.Notification
	done        chan struct{}
	maxAttempts int
	retryDelay  time.Duration
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		queue:       make(chan notifications.Notification, queueSize),
		done:        make(chan struct{}),
		maxAttempts: 3,
		retryDelay:  2 * time.Second,
	}
}

// Start launches the delivery goroutine.
func (d *Dispatcher) Start() {
	go d.run()
	slog.Info("👷 notification dispatcher started")
}

// Stop drains the queue and waits for the delivery goroutine to exit.
// Notify must not be called after Stop.
func (d *Dispatcher) Stop() {
	close(d.queue)
	<-d.done
}

// Notify satisfies transfer.NotificationSink.
func (d *Dispatcher) Notify(account *domain.Account, message string) {
	n := notifications.Notification{
		AccountID: account.ID,
		Message:   message,
		Timestamp: time.Now(),
	}
	select {
	case d.queue <- n:
	default:
		slog.Warn("notification queue full, dropping",
			"account", n.AccountID, "message", n.Message)
	}
}

func (d *Dispatcher) run() {
	for n := range d.queue {
		d.deliver(n)
	}
	close(d.done)
}

func (d *Dispatcher) deliver(n notifications.Notification) {
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		err := d.sender.Send(n)
		if err == nil {
			slog.Info("notification delivered", "account", n.AccountID)
			return
		}
		slog.Error("notification delivery failed",
			"error", err, "account", n.AccountID, "attempt", attempt)
		if attempt < d.maxAttempts {
			time.Sleep(time.Duration(attempt) * d.retryDelay)
		}
	}
	slog.Error("notification abandoned after max attempts",
		"account", n.AccountID, "attempts", d.maxAttempts)
}
