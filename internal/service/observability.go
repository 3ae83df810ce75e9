package service

import (
	"io"
	"log/slog"
)

// MutationEvent captures lightweight telemetry for a plan mutation.
type MutationEvent struct {
	Op           string
	InitiativeID string
	EntityID     string
	Fields       map[string]any
	Err          error
}

// MutationObserver receives plan mutation events.
type MutationObserver interface {
	ObserveMutation(event MutationEvent)
}

// NoopMutationObserver ignores all events.
type NoopMutationObserver struct{}

func (NoopMutationObserver) ObserveMutation(MutationEvent) {}

type logMutationObserver struct {
	logger *slog.Logger
}

// NewLogMutationObserver writes plan mutation events to the provided writer.
func NewLogMutationObserver(w io.Writer) MutationObserver {
	if w == nil {
		return NoopMutationObserver{}
	}
	return &logMutationObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logMutationObserver) ObserveMutation(event MutationEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs, "op", event.Op)
	if event.InitiativeID != "" {
		attrs = append(attrs, "initiative_id", event.InitiativeID)
	}
	if event.EntityID != "" {
		attrs = append(attrs, "entity_id", event.EntityID)
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Warn("plan_mutation", attrs...)
		return
	}
	o.logger.Info("plan_mutation", attrs...)
}

func mutationObserverOrNoop(observers []MutationObserver) MutationObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopMutationObserver{}
}
