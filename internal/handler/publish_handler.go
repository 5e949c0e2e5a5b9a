package handler

import (
	"errors"
	"net/http"

	"github.com/blanklearn/marketplace-backend/internal/catalog"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PublishHandler copies the sample teacher collection into the document store.
type PublishHandler struct {
	publisher *service.PublishService
	log       zerolog.Logger
}

func NewPublishHandler(publisher *service.PublishService, log zerolog.Logger) *PublishHandler {
	return &PublishHandler{
		publisher: publisher,
		log:       log.With().Str("component", "publish_handler").Logger(),
	}
}

// PublishTeachers godoc
// POST /api/v1/admin/catalog/publish-teachers
func (h *PublishHandler) PublishTeachers(c *gin.Context) {
	teachers := catalog.SampleTeachers()

	written, err := h.publisher.PublishTeachers(c.Request.Context(), teachers)
	if errors.Is(err, service.ErrDocStoreUnavailable) {
		response.Fail(c, http.StatusServiceUnavailable, response.ErrDocStoreDisabled)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Int("written", written).Msg("Teacher publish failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"published": written})
}
