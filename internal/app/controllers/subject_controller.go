package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/services"
	"github.com/tutorhub/backend/internal/middleware"
)

// SubjectController handles subjects and per-student grading
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateSubject creates a subject
// @Summary Create a subject
// @Description Creates a subject under a class the caller owns.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateSubjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(subject))
}

// GetSubject retrieves a subject
// @Summary Get subject details
// @Description Retrieves a subject by ID.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubject(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject))
}

// ListSubjectsByClass lists a class's subjects
// @Summary List subjects of a class
// @Description Lists the subjects belonging to a class.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id}/subjects [get]
func (c *SubjectController) ListSubjectsByClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subjects, err := c.subjectService.ListSubjectsByClass(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects))
}

// UpdateSubject renames a subject
// @Summary Update a subject
// @Description Renames a subject under a class the caller owns.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" minimum(1)
// @Param request body dto.UpdateSubjectRequest true "Subject information"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx.Request.Context(), identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject))
}

// DeleteSubject removes a subject
// @Summary Delete a subject
// @Description Removes a subject and its student records.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" minimum(1)
// @Success 200 {object} dto.APIResponse "Subject deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject deleted"))
}

// AssignStudent adds a student to a subject
// @Summary Assign a student to a subject
// @Description Adds a student to a subject with an empty grade record. Assigning twice is rejected with 400.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" minimum(1)
// @Param request body dto.AssignSubjectRequest true "Student to assign"
// @Success 201 {object} dto.APIResponse "Student assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, student not enrolled in class or already assigned"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Subject or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id}/students [post]
func (c *SubjectController) AssignStudent(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignSubjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.subjectService.AssignStudent(ctx.Request.Context(), identity, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student assigned"))
}

// RemoveStudent drops a student from a subject
// @Summary Remove a student from a subject
// @Description Drops a student's record for a subject.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" minimum(1)
// @Param studentId path int true "Student ID" minimum(1)
// @Success 200 {object} dto.APIResponse "Student removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Subject or record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id}/students/{studentId} [delete]
func (c *SubjectController) RemoveStudent(ctx *gin.Context) {
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

	if err := c.subjectService.RemoveStudent(ctx.Request.Context(), identity, id, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student removed"))
}

// Grade updates a student's score and attendance
// @Summary Grade a student
// @Description Updates a student's score and attendance for a subject. Omitted fields keep their values.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" minimum(1)
// @Param studentId path int true "Student ID" minimum(1)
// @Param request body dto.GradeRequest true "Score and attendance"
// @Success 200 {object} dto.APIResponse "Grade updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Subject or record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id}/students/{studentId}/grade [put]
func (c *SubjectController) Grade(ctx *gin.Context) {
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

	var req dto.GradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.subjectService.Grade(ctx.Request.Context(), identity, id, studentID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Grade updated"))
}

// ListSubjectStudents lists a subject's student records
// @Summary List subject students
// @Description Lists every student record for a subject with scores and attendance.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.StudentSubject} "Records retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id}/students [get]
func (c *SubjectController) ListSubjectStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.subjectService.ListSubjectStudents(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// ListMySubjects lists the calling student's subjects
// @Summary List own subjects
// @Description Lists the authenticated student's subjects with scores and attendance.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentSubject} "Subjects retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/me [get]
func (c *SubjectController) ListMySubjects(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	if identity.Role != models.RoleStudent || identity.SpecializationID == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Only students have graded subjects")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	subjects, err := c.subjectService.ListMySubjects(ctx.Request.Context(), *identity.SpecializationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects))
}
