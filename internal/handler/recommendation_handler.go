package handler

import (
	"errors"
	"net/http"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/recommend"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/blanklearn/marketplace-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves AI recommendations. A failed generator call
// still answers 200 with the default result.
type RecommendationHandler struct {
	recommendations *service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendations *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// RecommendCourses godoc
// POST /api/v1/recommendations/courses
func (h *RecommendationHandler) RecommendCourses(c *gin.Context) {
	h.recommend(c, model.RecommendCourses)
}

// RecommendTeachers godoc
// POST /api/v1/recommendations/teachers
func (h *RecommendationHandler) RecommendTeachers(c *gin.Context) {
	h.recommend(c, model.RecommendTeachers)
}

func (h *RecommendationHandler) recommend(c *gin.Context, kind model.RecommendationKind) {
	var req model.RecommendationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.recommendations.Recommend(c.Request.Context(), kind, req)
	if errors.Is(err, recommend.ErrNoInterests) {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrNoInterests, map[string]string{
			"interests": err.Error(),
		})
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}
