package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Generate and save an itinerary
// @Description Fetches the destination forecast, asks the AI provider for a day-by-day plan and stores both
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate-itinerary [post]
func (ic *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ic.itineraryService.Generate(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// ListSaved godoc
// @Summary List saved itineraries, newest first
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /saved-itineraries [get]
func (ic *ItineraryController) ListSaved(c *gin.Context) {
	itineraries, err := ic.itineraryService.ListSaved(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetByID godoc
// @Summary Get one itinerary with its day plans and budget breakdown
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/{id} [get]
func (ic *ItineraryController) GetByID(c *gin.Context) {
	detail, err := ic.itineraryService.GetByID(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Itinerary fetched successfully")
}

// Delete godoc
// @Summary Delete a saved itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /saved-itineraries/{id} [delete]
func (ic *ItineraryController) Delete(c *gin.Context) {
	if err := ic.itineraryService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
