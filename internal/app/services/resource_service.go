package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
	"github.com/tutorhub/backend/internal/pkg/filestorage"
	"github.com/tutorhub/backend/internal/pkg/helpers"
)

// maxResourceFileSize caps uploaded resource files at 10 MiB.
const maxResourceFileSize = 10 << 20

const resourceSubPath = "resources"

// ResourceService handles learning resources and their PDF files.
type ResourceService struct {
	resourceRepo *repositories.ResourceRepository
	storage      filestorage.Storage
	authz        *appauth.AuthorizationService
	logger       zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(
	resourceRepo *repositories.ResourceRepository,
	storage filestorage.Storage,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		storage:      storage,
		authz:        authz,
		logger:       logger,
	}
}

// validateResourceFile enforces the PDF-only, 10 MiB upload policy
func validateResourceFile(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > maxResourceFileSize {
		return apperrors.NewBadRequestError("file exceeds the 10 MiB limit")
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return apperrors.NewBadRequestError("only PDF files are accepted")
	}
	return nil
}

// CreateResource creates a resource, storing the optional PDF file first.
// If the database insert fails the stored file is removed again.
func (s *ResourceService) CreateResource(ctx context.Context, identity appauth.Identity, req *dto.CreateResourceRequest, fileHeader *multipart.FileHeader) (*dto.ResourceResponse, error) {
	resource := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
	}
	if identity.Role == models.RoleTutor {
		resource.TutorID = identity.SpecializationID
	}

	if fileHeader != nil {
		if err := validateResourceFile(fileHeader); err != nil {
			return nil, err
		}
		filePath, err := s.storage.SaveFile(fileHeader, resourceSubPath)
		if err != nil {
			return nil, fmt.Errorf("error storing resource file: %w", err)
		}
		resource.FilePath = &filePath
	}

	id, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		if resource.FilePath != nil {
			if delErr := s.storage.DeleteFile(*resource.FilePath); delErr != nil {
				s.logger.Warn().Err(delErr).Str("filePath", *resource.FilePath).
					Msg("Could not remove orphaned resource file")
			}
		}
		return nil, err
	}

	return s.GetResource(ctx, id)
}

// GetResource retrieves a resource by ID
func (s *ResourceService) GetResource(ctx context.Context, id int64) (*dto.ResourceResponse, error) {
	resource, err := s.resourceRepo.GetResourceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromResource(resource)
	return &resp, nil
}

// ListResources returns resources with pagination, optionally filtered by
// owning tutor.
func (s *ResourceService) ListResources(ctx context.Context, tutorID *int64, page, size int) (*dto.ResourceListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	resources, total, err := s.resourceRepo.List(ctx, tutorID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}

	resp := &dto.ResourceListResponse{
		Resources:  make([]dto.ResourceResponse, 0, len(resources)),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	for _, resource := range resources {
		resp.Resources = append(resp.Resources, dto.FromResource(resource))
	}
	return resp, nil
}

// UpdateResource modifies a resource's metadata and optionally replaces
// its file. The previous file is removed only after the row update
// succeeds.
func (s *ResourceService) UpdateResource(ctx context.Context, identity appauth.Identity, id int64, req *dto.UpdateResourceRequest, fileHeader *multipart.FileHeader) (*dto.ResourceResponse, error) {
	if err := s.authz.ValidateResourceOwnership(ctx, identity, id); err != nil {
		return nil, err
	}

	resource, err := s.resourceRepo.GetResourceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousFile := resource.FilePath

	resource.Title = req.Title
	resource.Description = req.Description

	if fileHeader != nil {
		if err := validateResourceFile(fileHeader); err != nil {
			return nil, err
		}
		filePath, err := s.storage.SaveFile(fileHeader, resourceSubPath)
		if err != nil {
			return nil, fmt.Errorf("error storing resource file: %w", err)
		}
		resource.FilePath = &filePath
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		if fileHeader != nil && resource.FilePath != nil {
			if delErr := s.storage.DeleteFile(*resource.FilePath); delErr != nil {
				s.logger.Warn().Err(delErr).Str("filePath", *resource.FilePath).
					Msg("Could not remove orphaned resource file")
			}
		}
		return nil, err
	}

	if fileHeader != nil && previousFile != nil {
		if delErr := s.storage.DeleteFile(*previousFile); delErr != nil {
			s.logger.Warn().Err(delErr).Str("filePath", *previousFile).
				Msg("Could not remove replaced resource file")
		}
	}

	return s.GetResource(ctx, id)
}

// DeleteResource removes a resource. The database row goes first; file
// removal afterwards is best effort, a failure only logs a warning.
func (s *ResourceService) DeleteResource(ctx context.Context, identity appauth.Identity, id int64) error {
	if err := s.authz.ValidateResourceOwnership(ctx, identity, id); err != nil {
		return err
	}

	filePath, err := s.resourceRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if filePath != nil && *filePath != "" {
		if err := s.storage.DeleteFile(*filePath); err != nil {
			s.logger.Warn().Err(err).Int64("resourceId", id).Str("filePath", *filePath).
				Msg("Resource row deleted but file removal failed")
		}
	}
	return nil
}

// ResolveFile returns the absolute path of a resource's stored file for
// download.
func (s *ResourceService) ResolveFile(ctx context.Context, id int64) (string, error) {
	resource, err := s.resourceRepo.GetResourceByID(ctx, id)
	if err != nil {
		return "", err
	}
	if resource.FilePath == nil || *resource.FilePath == "" {
		return "", apperrors.ErrResourceFileEmpty
	}
	return s.storage.FullPath(*resource.FilePath), nil
}
