package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/services"
	"github.com/tutorhub/backend/internal/middleware"
)

// TimetableController handles scheduled class sessions
type TimetableController struct {
	timetableService *services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService *services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// CreateEntry schedules a session
// @Summary Create a timetable entry
// @Description Schedules a session for a class the caller owns.
// @Tags timetables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTimetableRequest true "Entry information"
// @Success 201 {object} dto.APIResponse{data=dto.TimetableResponse} "Entry created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables [post]
func (c *TimetableController) CreateEntry(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateTimetableRequest
	if !bindJSON(ctx, &req) {
		return
	}

	entry, err := c.timetableService.CreateEntry(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(entry))
}

// GetEntry retrieves a timetable entry
// @Summary Get timetable entry details
// @Description Retrieves a timetable entry by ID with its class.
// @Tags timetables
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.TimetableResponse} "Entry retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry ID"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/{id} [get]
func (c *TimetableController) GetEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	entry, err := c.timetableService.GetEntry(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry))
}

// ListEntries lists timetable entries
// @Summary List timetable entries
// @Description Lists timetable entries ordered by date, optionally filtered by class and date range.
// @Tags timetables
// @Produce json
// @Security BearerAuth
// @Param classId query int false "Filter by class ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]dto.TimetableResponse} "Entries retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables [get]
func (c *TimetableController) ListEntries(ctx *gin.Context) {
	var classID *int64
	if classStr := ctx.Query("classId"); classStr != "" {
		id, err := strconv.ParseInt(classStr, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classId parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		classID = &id
	}

	entries, err := c.timetableService.ListEntries(ctx.Request.Context(), classID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// ListMyEntries lists the calling student's timetable
// @Summary List own timetable
// @Description Lists entries across every class the authenticated student is enrolled in.
// @Tags timetables
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]dto.TimetableResponse} "Entries retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/me [get]
func (c *TimetableController) ListMyEntries(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	if identity.Role != models.RoleStudent || identity.SpecializationID == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Only students have a personal timetable")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	entries, err := c.timetableService.ListMyEntries(ctx.Request.Context(), *identity.SpecializationID, ctx.Query("from"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// UpdateEntry modifies a timetable entry
// @Summary Update a timetable entry
// @Description Updates a timetable entry for a class the caller owns.
// @Tags timetables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID" minimum(1)
// @Param request body dto.UpdateTimetableRequest true "Entry information"
// @Success 200 {object} dto.APIResponse{data=dto.TimetableResponse} "Entry updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/{id} [put]
func (c *TimetableController) UpdateEntry(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTimetableRequest
	if !bindJSON(ctx, &req) {
		return
	}

	entry, err := c.timetableService.UpdateEntry(ctx.Request.Context(), identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry))
}

// DeleteEntry removes a timetable entry
// @Summary Delete a timetable entry
// @Description Removes a timetable entry for a class the caller owns.
// @Tags timetables
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID" minimum(1)
// @Success 200 {object} dto.APIResponse "Entry deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/{id} [delete]
func (c *TimetableController) DeleteEntry(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.timetableService.DeleteEntry(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Entry deleted"))
}
