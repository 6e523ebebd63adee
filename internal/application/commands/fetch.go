package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"regstub/internal/application"
	"regstub/internal/domain"
	"regstub/internal/ports"
)

// FetchResult is the outcome of mirroring a single document path
type FetchResult struct {
	Path  domain.DocumentPath
	Bytes int64
	Err   error
}

// FetchRegulationCommand mirrors every document belonging to a regulation:
// it discovers the notice list from the API, enumerates the full path set,
// and fetches each path in order.
type FetchRegulationCommand struct {
	api        ports.RegulationAPI
	store      ports.StubStore
	index      ports.FetchIndex
	logger     *zap.Logger
	Regulation string
}

// NewFetchRegulationCommand creates a new FetchRegulationCommand. index may
// be nil to skip manifest bookkeeping.
func NewFetchRegulationCommand(api ports.RegulationAPI, store ports.StubStore, index ports.FetchIndex, logger *zap.Logger, regulation string) *FetchRegulationCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FetchRegulationCommand{
		api:        api,
		store:      store,
		index:      index,
		logger:     logger,
		Regulation: regulation,
	}
}

// Validate checks if the fetch operation is valid
func (c *FetchRegulationCommand) Validate() error {
	if c.Regulation == "" {
		return &application.ValidationError{
			Field:   "regulation",
			Message: "regulation part is required",
		}
	}
	if err := domain.ValidatePart(c.Regulation); err != nil {
		return &application.ValidationError{
			Field:   "regulation",
			Message: err.Error(),
		}
	}
	return nil
}

// Execute discovers and mirrors the regulation. Discovery failure aborts
// (there is nothing to fetch without a notice list); individual document
// failures are logged, recorded, and skipped.
func (c *FetchRegulationCommand) Execute(ctx context.Context) ([]FetchResult, error) {
	notices, err := c.api.Notices(ctx, c.Regulation)
	if err != nil {
		return nil, fmt.Errorf("failed to discover notices for %s: %w", c.Regulation, err)
	}

	c.logger.Info("generating paths for regulation",
		zap.String("regulation", c.Regulation),
		zap.Int("notices", len(notices)))

	paths := domain.RegulationPaths(domain.Regulation{
		Part:    c.Regulation,
		Notices: notices,
	})

	return fetchAll(ctx, c.api, c.store, c.index, c.logger, paths), nil
}

// FetchPathsCommand mirrors an explicit list of document paths
type FetchPathsCommand struct {
	api    ports.RegulationAPI
	store  ports.StubStore
	index  ports.FetchIndex
	logger *zap.Logger
	Paths  []string
}

// NewFetchPathsCommand creates a new FetchPathsCommand. index may be nil to
// skip manifest bookkeeping.
func NewFetchPathsCommand(api ports.RegulationAPI, store ports.StubStore, index ports.FetchIndex, logger *zap.Logger, paths []string) *FetchPathsCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FetchPathsCommand{
		api:    api,
		store:  store,
		index:  index,
		logger: logger,
		Paths:  paths,
	}
}

// Validate checks if the fetch operation is valid
func (c *FetchPathsCommand) Validate() error {
	if len(c.Paths) == 0 {
		return &application.ValidationError{
			Field:   "paths",
			Message: "at least one path is required",
		}
	}
	return nil
}

// Execute mirrors each path in order, logging and skipping failures
func (c *FetchPathsCommand) Execute(ctx context.Context) ([]FetchResult, error) {
	paths := make([]domain.DocumentPath, 0, len(c.Paths))
	for _, p := range c.Paths {
		paths = append(paths, domain.ParseDocumentPath(p))
	}
	return fetchAll(ctx, c.api, c.store, c.index, c.logger, paths), nil
}

// fetchAll runs the sequential fetch loop. Every path is attempted exactly
// once; a failure never stops the loop.
func fetchAll(ctx context.Context, api ports.RegulationAPI, store ports.StubStore, index ports.FetchIndex, logger *zap.Logger, paths []domain.DocumentPath) []FetchResult {
	results := make([]FetchResult, 0, len(paths))
	for _, dp := range paths {
		results = append(results, fetchOne(ctx, api, store, index, logger, dp))
	}
	return results
}

func fetchOne(ctx context.Context, api ports.RegulationAPI, store ports.StubStore, index ports.FetchIndex, logger *zap.Logger, dp domain.DocumentPath) FetchResult {
	result := FetchResult{Path: dp}

	doc, err := api.Document(ctx, dp.Path)
	if err != nil {
		result.Err = err
		logger.Error("fetch failed", zap.String("path", dp.Path), zap.Error(err))
		record(index, logger, dp, result)
		return result
	}

	logger.Info("getting", zap.String("path", dp.Path))

	bytes, err := store.WriteDocument(dp.Path, doc)
	if err != nil {
		result.Err = err
		logger.Error("write failed", zap.String("path", dp.Path), zap.Error(err))
		record(index, logger, dp, result)
		return result
	}

	result.Bytes = bytes
	record(index, logger, dp, result)
	return result
}

func record(index ports.FetchIndex, logger *zap.Logger, dp domain.DocumentPath, result FetchResult) {
	if index == nil {
		return
	}

	rec := domain.FetchRecord{
		Path:       dp.Path,
		Regulation: dp.Regulation,
		Notice:     dp.Notice,
		Status:     domain.FetchStatusOK,
		Bytes:      result.Bytes,
	}
	if result.Err != nil {
		rec.Status = domain.FetchStatusFailed
		rec.Detail = result.Err.Error()
		rec.Bytes = 0
	}

	if err := index.Record(rec); err != nil {
		logger.Warn("manifest update failed", zap.String("path", dp.Path), zap.Error(err))
	}
}
