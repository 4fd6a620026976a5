// Package propertychecker provides a processor component that evaluates
// metadata quality rules against harvested dataset graphs and publishes
// the resulting measurement graphs.
package propertychecker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/opencatalog/propcheck/assess"
	"github.com/opencatalog/propcheck/catalog"
	"github.com/opencatalog/propcheck/engine"
	"github.com/opencatalog/propcheck/metrics"
	"github.com/opencatalog/propcheck/refdata"
)

// Component implements the property-checker processor.
type Component struct {
	name       string
	config     Config
	natsClient *natsclient.Client
	logger     *slog.Logger

	cat         *catalog.Catalog
	assessor    *assess.Assessor
	instruments *metrics.Metrics

	// Resolved subjects from port config
	inputSubject  string
	inputStream   string
	outputSubject string

	// Lifecycle
	running   bool
	startTime time.Time
	mu        sync.RWMutex
	cancel    context.CancelFunc

	// Metrics
	messagesProcessed atomic.Int64
	assessErrors      atomic.Int64
	publishErrors     atomic.Int64
	lastActivityMu    sync.RWMutex
	lastActivity      time.Time
}

// NewComponent creates a new property-checker processor component.
func NewComponent(rawConfig json.RawMessage, deps component.Dependencies) (component.Discoverable, error) {
	var config Config
	if err := json.Unmarshal(rawConfig, &config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if config.Ports == nil {
		config = DefaultConfig()
		if err := json.Unmarshal(rawConfig, &config); err != nil {
			return nil, fmt.Errorf("unmarshal config with defaults: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cat := catalog.Default()
	if config.CatalogPath != "" {
		loaded, err := catalog.Load(config.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
	}

	logger := deps.GetLogger()
	sets := refdata.NewClient(config.RefDataBaseURL,
		refdata.WithAPIKey(config.RefDataAPIKey),
		refdata.WithCacheTTL(config.GetRefDataTTL()),
		refdata.WithLogger(logger))

	// Resolve subjects from port definitions
	inputSubject := "dataset.harvested.events"
	inputStream := "DATASET"
	outputSubject := "mqa.properties.checked"

	if config.Ports != nil {
		if len(config.Ports.Inputs) > 0 {
			inputSubject = config.Ports.Inputs[0].Subject
			inputStream = config.Ports.Inputs[0].StreamName
		}
		if len(config.Ports.Outputs) > 0 {
			outputSubject = config.Ports.Outputs[0].Subject
		}
	}

	return &Component{
		name:          "property-checker",
		config:        config,
		natsClient:    deps.NATSClient,
		logger:        logger,
		cat:           cat,
		assessor:      assess.New(cat, sets, logger),
		inputSubject:  inputSubject,
		inputStream:   inputStream,
		outputSubject: outputSubject,
	}, nil
}

// SetInstruments attaches Prometheus instruments. Call before Start; the
// component never requires them.
func (c *Component) SetInstruments(m *metrics.Metrics) {
	c.instruments = m
	c.assessor.SetResultObserver(func(r engine.Result) {
		m.RuleResults.WithLabelValues(r.Outcome.String()).Inc()
	})
}

// Initialize prepares the component.
func (c *Component) Initialize() error {
	return nil
}

// Start begins consuming harvested dataset messages and publishing
// assessment results.
func (c *Component) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("component already running")
	}
	if c.natsClient == nil {
		c.mu.Unlock()
		return fmt.Errorf("NATS client required")
	}

	c.running = true
	c.startTime = time.Now()

	consumeCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	consumerCfg := natsclient.StreamConsumerConfig{
		StreamName:    c.inputStream,
		ConsumerName:  "property-checker",
		FilterSubject: c.inputSubject,
		DeliverPolicy: "new",
		AckPolicy:     "explicit",
		MaxDeliver:    3,
		AckWait:       30 * time.Second,
	}

	err := c.natsClient.ConsumeStreamWithConfig(consumeCtx, consumerCfg, c.handleMessage)
	if err != nil {
		c.mu.Lock()
		c.running = false
		c.cancel = nil
		c.mu.Unlock()
		cancel()
		return fmt.Errorf("start consumer: %w", err)
	}

	c.logger.Info("property-checker started",
		"catalog_version", c.cat.Version(),
		"rules", c.cat.Len(),
		"input", c.inputSubject,
		"output", c.outputSubject)

	return nil
}

// handleMessage assesses a single harvested dataset message.
func (c *Component) handleMessage(ctx context.Context, msg jetstream.Msg) {
	var baseMsg message.BaseMessage
	if err := json.Unmarshal(msg.Data(), &baseMsg); err != nil {
		c.logger.Warn("Failed to unmarshal base message",
			"error", err,
			"subject", msg.Subject())
		_ = msg.Nak()
		return
	}

	harvest, ok := baseMsg.Payload().(*HarvestPayload)
	if !ok {
		c.logger.Warn("Payload is not a harvested dataset",
			"type", baseMsg.Type(),
			"subject", msg.Subject())
		_ = msg.Nak()
		return
	}

	now := time.Now()
	triples, err := c.assessor.Assess(harvest.DatasetIRI, ToTriples(harvest.Triples), now)
	if c.instruments != nil {
		c.instruments.EvaluationsTotal.Inc()
		c.instruments.EvaluationSeconds.Observe(time.Since(now).Seconds())
	}
	if err != nil {
		c.logger.Warn("Assessment failed",
			"fdk_id", harvest.FdkID,
			"dataset", harvest.DatasetIRI,
			"error", err)
		c.assessErrors.Add(1)
		if c.instruments != nil {
			c.instruments.EvaluationErrors.Inc()
		}
		_ = msg.Nak()
		return
	}

	result := &ResultPayload{
		FdkID:          harvest.FdkID,
		DatasetIRI:     harvest.DatasetIRI,
		CatalogVersion: c.cat.Version(),
		Triples:        FromTriples(triples),
		CheckedAt:      now.UTC(),
	}

	baseOut := message.NewBaseMessage(result.Schema(), result, "property-checker")
	data, err := json.Marshal(baseOut)
	if err != nil {
		c.logger.Warn("Failed to marshal result message",
			"dataset", harvest.DatasetIRI,
			"error", err)
		c.publishErrors.Add(1)
		_ = msg.Nak()
		return
	}

	js, err := c.natsClient.JetStream()
	if err != nil {
		c.logger.Warn("Failed to get JetStream for result output",
			"dataset", harvest.DatasetIRI,
			"error", err)
		c.publishErrors.Add(1)
		_ = msg.Nak()
		return
	}
	if _, err := js.Publish(ctx, c.outputSubject, data); err != nil {
		c.logger.Warn("Failed to publish assessment result",
			"dataset", harvest.DatasetIRI,
			"subject", c.outputSubject,
			"error", err)
		c.publishErrors.Add(1)
		_ = msg.Nak()
		return
	}

	_ = msg.Ack()
	c.messagesProcessed.Add(1)
	c.updateLastActivity()

	c.logger.Debug("Assessed dataset",
		"fdk_id", harvest.FdkID,
		"dataset", harvest.DatasetIRI,
		"measurement_triples", len(triples))
}

// Stop gracefully stops the component.
func (c *Component) Stop(_ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	c.running = false
	c.logger.Info("property-checker stopped",
		"messages_processed", c.messagesProcessed.Load(),
		"assess_errors", c.assessErrors.Load(),
		"publish_errors", c.publishErrors.Load())

	return nil
}

// Meta returns component metadata.
func (c *Component) Meta() component.Metadata {
	return component.Metadata{
		Name:        "property-checker",
		Type:        "processor",
		Description: "Evaluates metadata quality rules against harvested dataset graphs",
		Version:     "1.0.0",
	}
}

// InputPorts returns configured input port definitions.
func (c *Component) InputPorts() []component.Port {
	if c.config.Ports == nil {
		return []component.Port{}
	}

	ports := make([]component.Port, len(c.config.Ports.Inputs))
	for i, portDef := range c.config.Ports.Inputs {
		ports[i] = buildPort(portDef, component.DirectionInput)
	}
	return ports
}

// OutputPorts returns configured output port definitions.
func (c *Component) OutputPorts() []component.Port {
	if c.config.Ports == nil {
		return []component.Port{}
	}

	ports := make([]component.Port, len(c.config.Ports.Outputs))
	for i, portDef := range c.config.Ports.Outputs {
		ports[i] = buildPort(portDef, component.DirectionOutput)
	}
	return ports
}

// buildPort creates a component.Port from a PortDefinition, using JetStreamPort
// for jetstream-type ports and NATSPort for core NATS ports.
func buildPort(portDef component.PortDefinition, direction component.Direction) component.Port {
	port := component.Port{
		Name:        portDef.Name,
		Direction:   direction,
		Required:    portDef.Required,
		Description: portDef.Description,
	}
	if portDef.Type == "jetstream" {
		port.Config = component.JetStreamPort{
			StreamName: portDef.StreamName,
			Subjects:   []string{portDef.Subject},
		}
	} else {
		port.Config = component.NATSPort{
			Subject: portDef.Subject,
		}
	}
	return port
}

// ConfigSchema returns the configuration schema.
func (c *Component) ConfigSchema() component.ConfigSchema {
	return propertyCheckerSchema
}

// Health returns the current health status.
func (c *Component) Health() component.HealthStatus {
	c.mu.RLock()
	running := c.running
	startTime := c.startTime
	c.mu.RUnlock()

	errorCount := int(c.assessErrors.Load() + c.publishErrors.Load())

	status := "stopped"
	if running {
		status = "running"
	}

	return component.HealthStatus{
		Healthy:    running,
		LastCheck:  time.Now(),
		ErrorCount: errorCount,
		Uptime:     time.Since(startTime),
		Status:     status,
	}
}

// DataFlow returns current data flow metrics.
func (c *Component) DataFlow() component.FlowMetrics {
	return component.FlowMetrics{
		MessagesPerSecond: 0,
		BytesPerSecond:    0,
		ErrorRate:         0,
		LastActivity:      c.getLastActivity(),
	}
}

func (c *Component) updateLastActivity() {
	c.lastActivityMu.Lock()
	c.lastActivity = time.Now()
	c.lastActivityMu.Unlock()
}

func (c *Component) getLastActivity() time.Time {
	c.lastActivityMu.RLock()
	defer c.lastActivityMu.RUnlock()
	return c.lastActivity
}
