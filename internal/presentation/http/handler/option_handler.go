package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/application/service"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/response"
)

// OptionHandler handles option grid HTTP requests
type OptionHandler struct {
	optionService *service.OptionService
}

// NewOptionHandler creates a new option handler
func NewOptionHandler(optionService *service.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

func parseOptionFilter(c *gin.Context) (*repository.OptionFilter, error) {
	filter := &repository.OptionFilter{
		Search:  c.Query("search"),
		HotOnly: c.Query("hot") == "true",
	}

	if typeParam := c.Query("type"); typeParam != "" {
		optType := enum.OptionType(typeParam)
		if optType != enum.OptionTypeCall && optType != enum.OptionTypePut {
			return nil, &invalidFilterError{param: "type"}
		}
		filter.Type = &optType
	}

	return filter, nil
}

type invalidFilterError struct{ param string }

func (e *invalidFilterError) Error() string { return "invalid filter: " + e.param }

// List returns the option grid. Free users see capped multipliers and no hot
// badges; authentication is optional.
func (h *OptionHandler) List(c *gin.Context) {
	filter, err := parseOptionFilter(c)
	if err != nil {
		response.BadRequest(c, "Invalid option type, expected call or put")
		return
	}

	listings, err := h.optionService.ListGrid(c.Request.Context(), filter, GetUserPlan(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Options retrieved", gin.H{
		"options": listings,
		"count":   len(listings),
	})
}

// LiveQuotes returns the grid with simulated ticking prices. Pro only; the
// route is gated by RequirePlan.
func (h *OptionHandler) LiveQuotes(c *gin.Context) {
	filter, err := parseOptionFilter(c)
	if err != nil {
		response.BadRequest(c, "Invalid option type, expected call or put")
		return
	}

	listings, err := h.optionService.LiveQuotes(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Live quotes retrieved", gin.H{
		"options": listings,
		"count":   len(listings),
	})
}
