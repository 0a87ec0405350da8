package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"restaurant_finder/config"
	"restaurant_finder/models"
	"restaurant_finder/services"
	"restaurant_finder/utils"
)

var validate = validator.New()

// SuggestHandler godoc
// @Summary Ask the concierge for restaurant suggestions
// @Description Scores the catalogue against the question's intent and returns a ranked shortlist with confidence values and reasoning
// @Tags concierge
// @Accept json
// @Produce json
// @Param request body models.ConciergeRequest true "free-text question with optional context"
// @Success 200 {object} models.ConciergeResponse "suggestions"
// @Failure 400 {object} models.APIResponse "invalid payload"
// @Router /api/ai/suggest [post]
func SuggestHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, concierge *services.ConciergeService) {
	var req models.ConciergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
			"error": "invalid JSON payload",
		})
		return
	}

	// validation happens at the boundary, the core assumes a usable question
	req.Question = strings.TrimSpace(req.Question)
	if err := validate.Struct(&req); err != nil || len(req.Question) < cfg.Concierge.MinQuestionLen {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
			"field":  "question",
			"reason": "prompt should include at least a few words",
		})
		return
	}

	response := concierge.Ask(r.Context(), req.Question)
	utils.WriteJSON(w, http.StatusOK, response)
}
