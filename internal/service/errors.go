// Package service holds the catalog's business rules between HTTP handlers and the entity store.
package service

import (
	"errors"
	"strings"

	"toolverse/internal/models"
	"toolverse/internal/repository"
)

// storeError maps store sentinels onto API errors. AppErrors pass through unchanged.
func storeError(err error, resource string, id any) error {
	if err == nil {
		return nil
	}
	var appErr *models.AppError
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return models.NewNotFoundError(resource, id)
	case errors.Is(err, repository.ErrConflict):
		return models.NewConflictError(resource + " already exists")
	}
	return models.NewInternalError(err)
}

// blankToNil treats an empty or whitespace-only optional string as absent.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
