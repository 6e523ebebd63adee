package commands

import (
	"context"
	"fmt"

	"regstub/internal/application"
	"regstub/internal/domain"
	"regstub/internal/ports"
)

// ListPathsCommand enumerates the document paths of a regulation without
// fetching any of them
type ListPathsCommand struct {
	api        ports.RegulationAPI
	Regulation string
}

// NewListPathsCommand creates a new ListPathsCommand
func NewListPathsCommand(api ports.RegulationAPI, regulation string) *ListPathsCommand {
	return &ListPathsCommand{
		api:        api,
		Regulation: regulation,
	}
}

// Validate checks if the list operation is valid
func (c *ListPathsCommand) Validate() error {
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

// Execute queries the notice list and returns the enumerated paths
func (c *ListPathsCommand) Execute(ctx context.Context) ([]domain.DocumentPath, error) {
	notices, err := c.api.Notices(ctx, c.Regulation)
	if err != nil {
		return nil, fmt.Errorf("failed to discover notices for %s: %w", c.Regulation, err)
	}

	return domain.RegulationPaths(domain.Regulation{
		Part:    c.Regulation,
		Notices: notices,
	}), nil
}
