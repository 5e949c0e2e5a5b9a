package handler

import (
	"errors"
	"net/http"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/blanklearn/marketplace-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public course and teacher catalog.
type CatalogHandler struct {
	catalog      *service.CatalogService
	verification *service.VerificationService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService, verification *service.VerificationService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, verification: verification}
}

// ListCourses godoc
// GET /api/v1/courses
// Optional filters: search, subject, teacher, min_rating, age_group, max_price, type.
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	var q model.CourseQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery, fields)
		return
	}

	courses := h.catalog.ListCourses(c.Request.Context(), q.Criteria())
	response.Success(c, http.StatusOK, gin.H{
		"courses": courses,
		"total":   len(courses),
	})
}

// CourseFacets godoc
// GET /api/v1/courses/facets
func (h *CatalogHandler) CourseFacets(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalog.CourseFacets(c.Request.Context()))
}

// GetCourse godoc
// GET /api/v1/courses/:id
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.catalog.GetCourse(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrCourseNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// ListTeachers godoc
// GET /api/v1/teachers
// Optional filters: search, grade, min_rating, min_experience.
func (h *CatalogHandler) ListTeachers(c *gin.Context) {
	var q model.TeacherQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery, fields)
		return
	}

	teachers := h.catalog.ListTeachers(c.Request.Context(), q.Criteria())
	response.Success(c, http.StatusOK, gin.H{
		"teachers": teachers,
		"total":    len(teachers),
	})
}

// TeacherFacets godoc
// GET /api/v1/teachers/facets
func (h *CatalogHandler) TeacherFacets(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalog.TeacherFacets(c.Request.Context()))
}

// GetTeacher godoc
// GET /api/v1/teachers/:id
// Includes open seats per slot.
func (h *CatalogHandler) GetTeacher(c *gin.Context) {
	teacher, err := h.catalog.GetTeacher(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, teacher)
}

// VerifyTeacher godoc
// GET /api/v1/teachers/:id/verification
func (h *CatalogHandler) VerifyTeacher(c *gin.Context) {
	ctx := c.Request.Context()
	teacher, err := h.catalog.GetTeacher(ctx, c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, h.verification.VerifyTeacher(ctx, teacher.ID))
}
