package handlers

import (
  "errors"
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/Emna-borji/tourismrep/internal/logger"
  "github.com/Emna-borji/tourismrep/internal/services"
)

type RecommendationHandler struct {
  log    *logger.Logger
  recSvc services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
  return &RecommendationHandler{
    log:    log.With("handler", "RecommendationHandler"),
    recSvc: recSvc,
  }
}

// GET /api/recommendations?user_id=<uuid>&top_n=<int>
// Top-N recommended entities per type for the user.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
  userID, err := uuid.Parse(c.Query("user_id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("user_id must be a valid uuid"))
    return
  }

  topN := services.DefaultTopN
  if raw := c.Query("top_n"); raw != "" {
    topN, err = strconv.Atoi(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_top_n", errors.New("top_n must be an integer"))
      return
    }
  }

  result, err := h.recSvc.Recommend(c.Request.Context(), userID, topN)
  if err != nil {
    switch {
    case errors.Is(err, services.ErrInvalidTopN):
      RespondError(c, http.StatusBadRequest, "invalid_top_n", err)
    case errors.Is(err, gorm.ErrRecordNotFound):
      RespondError(c, http.StatusNotFound, "user_not_found", errors.New("user not found"))
    default:
      h.log.Error("Recommendation computation failed", "user_id", userID, "error", err)
      RespondError(c, http.StatusInternalServerError, "recommendation_failed", errors.New("could not compute recommendations"))
    }
    return
  }

  RespondOK(c, result)
}
