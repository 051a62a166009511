package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/rhenanbartels/rri-rqa-analysis/utils"
	"go.uber.org/zap"
)

const (
	DefaultSubject = "rri.segments"
	flushTimeout   = 2 * time.Second
)

func Connect(url string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name("rri-rqa-analysis"),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
	)
}

// NATSReporter publishes each run report as JSON on subject.
type NATSReporter struct {
	conn    *nats.Conn
	subject string
}

func NewNATSReporter(url, subject string) (*NATSReporter, error) {
	conn, err := Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return NewNATSReporterWithConn(conn, subject), nil
}

func NewNATSReporterWithConn(conn *nats.Conn, subject string) *NATSReporter {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSReporter{
		conn:    conn,
		subject: subject,
	}
}

func (r *NATSReporter) Report(ctx context.Context, run *model.RunReport) error {
	logger := utils.GetLogger(ctx)

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run report: %w", err)
	}
	if err := r.conn.Publish(r.subject, data); err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", r.subject, err)
	}
	if err := r.flush(ctx); err != nil {
		return fmt.Errorf("failed to flush subject %s: %w", r.subject, err)
	}

	logger.Debug("run report published", zap.String("subject", r.subject), zap.Int("bytes", len(data)))
	return nil
}

// flush waits for the server to ack, FlushWithContext needs a deadline.
func (r *NATSReporter) flush(ctx context.Context) error {
	if _, ok := ctx.Deadline(); ok {
		return r.conn.FlushWithContext(ctx)
	}
	return r.conn.FlushTimeout(flushTimeout)
}

func (r *NATSReporter) Close() error {
	return r.conn.Drain()
}
