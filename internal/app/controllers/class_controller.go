package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/services"
	"github.com/tutorhub/backend/internal/middleware"
	"github.com/tutorhub/backend/internal/pkg/helpers"
)

// ClassController handles class and enrollment operations
type ClassController struct {
	classService *services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService *services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// CreateClass creates a class
// @Summary Create a class
// @Description Creates a class. A tutor becomes its owner; an admin may assign any tutor or none.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=dto.ClassResponse} "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Assigned tutor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if !bindJSON(ctx, &req) {
		return
	}

	class, err := c.classService.CreateClass(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(class))
}

// GetClass retrieves a class
// @Summary Get class details
// @Description Retrieves a class by ID with its owning tutor.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ClassResponse} "Class retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	class, err := c.classService.GetClass(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(class))
}

// ListClasses lists classes
// @Summary List classes
// @Description Lists classes with pagination, optionally filtered by owning tutor.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param tutorId query int false "Filter by tutor ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClassListResponse} "Classes retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
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

	classes, err := c.classService.ListClasses(ctx.Request.Context(), tutorID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classes))
}

// UpdateClass modifies a class
// @Summary Update a class
// @Description Updates a class. Only the owning tutor or an admin may update; reassignment is admin-only.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Param request body dto.UpdateClassRequest true "Class information"
// @Success 200 {object} dto.APIResponse{data=dto.ClassResponse} "Class updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassRequest
	if !bindJSON(ctx, &req) {
		return
	}

	class, err := c.classService.UpdateClass(ctx.Request.Context(), identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(class))
}

// DeleteClass removes a class
// @Summary Delete a class
// @Description Removes a class with its enrollments, subjects and timetable entries.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Success 200 {object} dto.APIResponse "Class deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classService.DeleteClass(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Class deleted"))
}

// EnrollStudent assigns a student to a class
// @Summary Enroll a student
// @Description Assigns a student to a class. Enrolling the same student twice is rejected with 400.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Param request body dto.EnrollStudentRequest true "Student to enroll"
// @Success 201 {object} dto.APIResponse "Student enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or student already enrolled"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/students [post]
func (c *ClassController) EnrollStudent(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EnrollStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.classService.EnrollStudent(ctx.Request.Context(), identity, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student enrolled"))
}

// UnenrollStudent removes a student from a class
// @Summary Unenroll a student
// @Description Removes a student's enrollment from a class.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Param studentId path int true "Student ID" minimum(1)
// @Success 200 {object} dto.APIResponse "Student unenrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class or enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/students/{studentId} [delete]
func (c *ClassController) UnenrollStudent(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.classService.UnenrollStudent(ctx.Request.Context(), identity, id, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student unenrolled"))
}

// ListClassStudents lists a class's students
// @Summary List enrolled students
// @Description Lists the students enrolled in a class.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/students [get]
func (c *ClassController) ListClassStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.classService.ListClassStudents(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// ListMyClasses lists the calling student's classes
// @Summary List own classes
// @Description Lists the classes the authenticated student is enrolled in.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassResponse} "Classes retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/me [get]
func (c *ClassController) ListMyClasses(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	if identity.Role != models.RoleStudent || identity.SpecializationID == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Only students have enrolled classes")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	classes, err := c.classService.ListMyClasses(ctx.Request.Context(), *identity.SpecializationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classes))
}
