// Package dispatch orchestrates one task request: classify the
// description, execute the selected operation, and normalize the
// result into a single Outcome. There are no retries and no rollback;
// a partial write left by a failed operation stays in place.
package dispatch

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"opsagent/internal/classify"
	"opsagent/internal/fault"
	"opsagent/internal/ops"
)

// Phase is the dispatcher's position in a request's lifecycle.
type Phase int

const (
	PhaseClassifying Phase = iota
	PhaseExecuting
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseClassifying:
		return "classifying"
	case PhaseExecuting:
		return "executing"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Outcome is the uniform result of one request. Exactly one Outcome
// is produced per request.
type Outcome struct {
	OK      bool
	Message string
	Kind    fault.Kind
}

// Dispatcher wires the classifier to the operation library.
type Dispatcher struct {
	classifier *classify.Classifier
	lib        *ops.Library
	log        *zap.Logger
}

// New builds a dispatcher.
func New(classifier *classify.Classifier, lib *ops.Library, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{classifier: classifier, lib: lib, log: logger}
}

// Run executes one task description through to a terminal Outcome.
func (d *Dispatcher) Run(ctx context.Context, desc string) Outcome {
	id := uuid.NewString()
	log := d.log.With(zap.String("request_id", id))

	phase := PhaseClassifying
	m, ok := d.classifier.Classify(desc)
	if !ok {
		log.Info("task rejected",
			zap.String("phase", phase.String()),
			zap.String("reason", fault.Unrecognized.String()))
		return Outcome{OK: false, Message: "Task not recognized.", Kind: fault.Unrecognized}
	}

	phase = PhaseExecuting
	log.Info("task accepted",
		zap.String("phase", phase.String()),
		zap.String("operation", m.Op.String()))

	msg, err := d.lib.Run(ctx, m)

	phase = PhaseCompleted
	if err != nil {
		kind := fault.KindOf(err)
		log.Warn("task failed",
			zap.String("phase", phase.String()),
			zap.String("operation", m.Op.String()),
			zap.String("kind", kind.String()),
			zap.Error(err))
		return Outcome{OK: false, Message: strings.TrimSpace(err.Error()), Kind: kind}
	}

	log.Info("task completed",
		zap.String("phase", phase.String()),
		zap.String("operation", m.Op.String()))
	return Outcome{OK: true, Message: msg, Kind: fault.None}
}
