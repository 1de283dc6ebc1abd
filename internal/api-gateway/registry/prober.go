package registry

import (
	"GenoFlow_Gateway/internal/api-gateway/model"
	"GenoFlow_Gateway/pkg/infra"
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Prober interface {
	// ProbeAll health-checks every registered instance concurrently and returns one event per probe.
	ProbeAll(ctx context.Context) []model.HealthEvent
}

type prober struct {
	registry Registry
	kafka    infra.KafkaWriter
	timeout  time.Duration
	logger   *zap.Logger
}

func (p *prober) ProbeAll(ctx context.Context) []model.HealthEvent {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		events []model.HealthEvent
	)
	for service, instances := range p.registry.Snapshot() {
		for _, inst := range instances {
			wg.Add(1)
			go func(service, url string) {
				defer wg.Done()
				probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
				defer cancel()
				healthy := p.registry.HealthCheck(probeCtx, service, url)
				state, ok := p.registry.Instance(service, url)
				if !ok {
					return
				}
				mu.Lock()
				events = append(events, model.HealthEvent{
					Service:      service,
					URL:          url,
					Healthy:      healthy,
					HealthScore:  state.HealthScore,
					FailureCount: state.FailureCount,
					Timestamp:    state.LastChecked,
				})
				mu.Unlock()
			}(service, inst.URL)
		}
	}
	wg.Wait()

	sort.Slice(events, func(i, j int) bool {
		if events[i].Service != events[j].Service {
			return events[i].Service < events[j].Service
		}
		return events[i].URL < events[j].URL
	})
	for _, event := range events {
		if !event.Healthy {
			p.logger.Warn("backend instance failed health probe",
				zap.String("service", event.Service),
				zap.String("url", event.URL),
				zap.Float64("health_score", event.HealthScore),
				zap.Int("failure_count", event.FailureCount))
		}
	}
	p.publish(ctx, events)
	return events
}

func (p *prober) publish(ctx context.Context, events []model.HealthEvent) {
	if p.kafka == nil || len(events) == 0 {
		return
	}
	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		b, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("failed to encode health event", zap.Error(err))
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.Service),
			Value: b,
		})
	}
	// publishing has its own deadline, independent of the probes
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.kafka.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error("failed to publish health events", zap.Int("count", len(messages)), zap.Error(err))
	}
}

// NewProber builds a prober. kafkaWriter may be nil, in which case events are only returned and logged.
func NewProber(registry Registry, kafkaWriter infra.KafkaWriter, timeout time.Duration, logger *zap.Logger) Prober {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &prober{
		registry: registry,
		kafka:    kafkaWriter,
		timeout:  timeout,
		logger:   logger,
	}
}
