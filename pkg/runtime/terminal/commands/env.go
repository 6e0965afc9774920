package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/de-tools/deal-atlas/pkg/services/config"
	"github.com/de-tools/deal-atlas/pkg/services/deals"
	"github.com/de-tools/deal-atlas/pkg/store/document"
	"github.com/rs/zerolog"
)

// ReportHandler renders a run summary.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

// Env is shared by every command. Registry and Store are set at construction,
// the remaining fields once flags and configuration have been read.
type Env struct {
	Registry   deals.Registry
	Store      document.Store
	Settings   *config.Settings
	Classifier *deals.Classifier
	Reporter   ReportHandler
}

// Generate runs one strategy from baseFile into outputFile. Nothing is written
// unless the whole document was generated.
func (e *Env) Generate(
	ctx context.Context,
	name domain.StrategyName,
	baseFile, outputFile string,
	params deals.Params,
) (*domain.DealsDocument, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("strategy", string(name)).
		Str("date", params.Date).
		Int("date_index", params.DateIndex).
		Logger()

	strategy, err := e.Registry.Create(name, deals.Options{Classifier: e.Classifier})
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy: %w", err)
	}

	base, err := e.Store.Load(ctx, baseFile)
	if err != nil {
		return nil, err
	}

	doc, err := strategy.Generate(base, params)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s deals for %s: %w", name, params.Date, err)
	}

	if err := e.Store.Save(ctx, outputFile, doc); err != nil {
		return nil, err
	}

	logger.Info().
		Int("base_deals", len(base.Deals)).
		Int("deals", len(doc.Deals)).
		Str("output", outputFile).
		Msg("generated deals")

	if e.Reporter != nil {
		if err := e.Reporter.Handle(deals.Summarize(name, doc, e.Classifier)); err != nil {
			return nil, fmt.Errorf("failed to render summary: %w", err)
		}
	}

	return doc, nil
}
