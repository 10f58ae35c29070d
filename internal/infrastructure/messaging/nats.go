package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/core/domain"
)

const subjectPrefix = "location.recorded."

// ErrInvalidSubject is returned for device IDs that would not form a single
// subject token.
var ErrInvalidSubject = errors.New("device id is not a valid subject token")

// Connect dials NATS and keeps reconnecting in the background.
func Connect(url string, log zerolog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("geopoint"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return conn, nil
}

// recordedEvent is the payload published for every accepted report.
type recordedEvent struct {
	DeviceID   string          `json:"device_id"`
	Location   domain.GeoPoint `json:"location"`
	Timestamp  time.Time       `json:"timestamp"`
	Source     string          `json:"source"`
	ReceivedAt time.Time       `json:"received_at"`
}

// Publisher implements ports.ReportPublisher over core NATS.
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(conn *nats.Conn) *Publisher {
	return &Publisher{conn: conn}
}

// Subject returns the subject a device's reports are published on.
func Subject(deviceID string) string {
	return subjectPrefix + deviceID
}

func validToken(s string) bool {
	return s != "" && !strings.ContainsAny(s, ".*> \t\r\n")
}

func (p *Publisher) PublishRecorded(ctx context.Context, report *domain.LocationReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validToken(report.DeviceID) {
		return fmt.Errorf("publish report %q: %w", report.DeviceID, ErrInvalidSubject)
	}
	data, err := json.Marshal(recordedEvent{
		DeviceID:   report.DeviceID,
		Location:   report.Location,
		Timestamp:  report.Timestamp,
		Source:     report.Source,
		ReceivedAt: report.ReceivedAt,
	})
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := p.conn.Publish(Subject(report.DeviceID), data); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	return nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}
