package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/joshjon/kit/log"

	"github.com/isshub/isshub/entity"
	"github.com/isshub/isshub/factory"
	"github.com/isshub/isshub/field"
	"github.com/isshub/isshub/internal/randutil"
	"github.com/isshub/isshub/logkey"
)

// ErrFixturesRejected is returned by RunValidate when at least one fixture
// failed validation.
var ErrFixturesRejected = errors.New("one or more fixtures were rejected")

// ValidateReport summarizes a RunValidate call.
type ValidateReport struct {
	Accepted int
	Rejected []Rejection
}

type Rejection struct {
	Index int
	Field string
	Kind  string
	Err   error
}

// RunValidate builds a Namespace from every fixture and logs whether it was
// accepted or rejected.
func RunValidate(ctx context.Context, logger log.Logger, fixtures []entity.Values) (ValidateReport, error) {
	logger = logger.With(
		logkey.Component, "validate",
		logkey.RunID, uuid.New().String(),
		logkey.EntityType, entity.TypeNamespace.String(),
	)

	var report ValidateReport
	for i, values := range fixtures {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		ns, err := entity.NewNamespace(values)
		if err != nil {
			rej := newRejection(i, err)
			report.Rejected = append(report.Rejected, rej)
			logger.Warn("fixture rejected",
				logkey.FixtureIndex, i,
				logkey.FieldName, rej.Field,
				logkey.ErrorKind, rej.Kind,
				"error", err,
			)
			continue
		}
		report.Accepted++
		logger.Info("fixture accepted",
			logkey.FixtureIndex, i,
			logkey.NamespaceID, ns.ID(),
			logkey.NamespaceName, ns.Name(),
			logkey.NamespaceKind, ns.Kind().String(),
		)
	}

	logger.Info("fixtures validated", "accepted", report.Accepted, "rejected", len(report.Rejected))
	if len(report.Rejected) > 0 {
		return report, ErrFixturesRejected
	}
	return report, nil
}

func newRejection(index int, err error) Rejection {
	rej := Rejection{Index: index, Err: err, Kind: errorKind(err)}
	var ferr *field.Error
	if errors.As(err, &ferr) {
		rej.Field = ferr.Field
	}
	return rej
}

func errorKind(err error) string {
	switch {
	case field.IsTypeViolation(err):
		return "type"
	case field.IsValueViolation(err):
		return "value"
	default:
		return "unknown"
	}
}

// RunFake writes cfg.Count random namespaces to w as JSON lines.
func RunFake(ctx context.Context, logger log.Logger, w io.Writer, cfg FakeConfig) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger = logger.With(logkey.Component, "fake", logkey.RunID, uuid.New().String())

	var overrides entity.Values
	if cfg.Kind != "" {
		kind, err := entity.ParseNamespaceKind(cfg.Kind)
		if err != nil {
			return err
		}
		overrides = entity.Values{entity.FieldNamespaceKind: kind}
	}

	f := factory.NewNamespaceFactory(randutil.New(seed))
	enc := json.NewEncoder(w)
	for range cfg.Count {
		if err := ctx.Err(); err != nil {
			return err
		}
		ns, err := f.Build(overrides)
		if err != nil {
			return fmt.Errorf("build namespace: %w", err)
		}
		if err = enc.Encode(ns); err != nil {
			return fmt.Errorf("write namespace: %w", err)
		}
	}

	logger.Info("namespaces generated", "count", cfg.Count, "seed", seed)
	return nil
}
