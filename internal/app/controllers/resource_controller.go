package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/services"
	"github.com/tutorhub/backend/internal/middleware"
	"github.com/tutorhub/backend/internal/pkg/helpers"
)

// ResourceController handles learning resources and their files
type ResourceController struct {
	resourceService *services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// CreateResource creates a resource
// @Summary Create a resource
// @Description Creates a learning resource with an optional PDF file (max 10 MiB), sent as multipart form data.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param file formData file false "PDF file"
// @Success 201 {object} dto.APIResponse{data=dto.ResourceResponse} "Resource created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, non-PDF file or file too large"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		fileHeader = nil
	}

	resource, err := c.resourceService.CreateResource(ctx.Request.Context(), identity, &req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resource))
}

// GetResource retrieves a resource
// @Summary Get resource details
// @Description Retrieves a resource's metadata by ID.
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ResourceResponse} "Resource retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resource, err := c.resourceService.GetResource(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resource))
}

// ListResources lists resources
// @Summary List resources
// @Description Lists resources with pagination, optionally filtered by owning tutor.
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param tutorId query int false "Filter by tutor ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse} "Resources retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources [get]
func (c *ResourceController) ListResources(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var tutorID *int64
	if tutorStr := ctx.Query("tutorId"); tutorStr != "" {
		id, err := strconv.ParseInt(tutorStr, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid tutorId parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		tutorID = &id
	}

	resources, err := c.resourceService.ListResources(ctx.Request.Context(), tutorID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resources))
}

// UpdateResource modifies a resource
// @Summary Update a resource
// @Description Updates a resource's metadata and optionally replaces its file.
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID" minimum(1)
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param file formData file false "Replacement PDF file"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceResponse} "Resource updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		fileHeader = nil
	}

	resource, err := c.resourceService.UpdateResource(ctx.Request.Context(), identity, id, &req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resource))
}

// DeleteResource removes a resource
// @Summary Delete a resource
// @Description Removes a resource. The database row is deleted first; file cleanup is best effort.
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID" minimum(1)
// @Success 200 {object} dto.APIResponse "Resource deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resourceService.DeleteResource(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Resource deleted"))
}

// DownloadResource serves a resource's file
// @Summary Download a resource file
// @Description Serves the stored PDF file of a resource.
// @Tags resources
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Resource ID" minimum(1)
// @Success 200 {file} file "PDF file"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 404 {object} dto.ErrorResponse "Resource or file not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/{id}/file [get]
func (c *ResourceController) DownloadResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	path, err := c.resourceService.ResolveFile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.File(path)
}
