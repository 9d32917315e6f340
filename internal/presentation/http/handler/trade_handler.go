package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/application/service"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/request"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/response"
	"github.com/StephenEkwedike/FunRobin/pkg/pagination"
)

// TradeHandler handles trade journal HTTP requests
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// Open records a new open position
func (h *TradeHandler) Open(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.OpenTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := service.OpenTradeInput{
		Broker:     req.Broker,
		Symbol:     req.Symbol,
		AssetType:  req.AssetType,
		Side:       enum.TradeSide(req.Side),
		Quantity:   req.Quantity,
		Multiplier: req.Multiplier,
		EntryPrice: req.EntryPrice,
		Fees:       req.Fees,
		Strike:     req.Strike,
		Expiry:     req.Expiry,
		OpenedAt:   req.OpenedAt,
	}
	if req.OptionType != nil {
		optType := enum.OptionType(*req.OptionType)
		input.OptionType = &optType
	}

	trade, err := h.tradeService.Open(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Trade opened", trade)
}

// Close settles an open position
func (h *TradeHandler) Close(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trade ID")
		return
	}

	var req request.CloseTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	trade, err := h.tradeService.Close(c.Request.Context(), *userID, tradeID, req.ExitPrice, req.Fees, req.ClosedAt)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trade closed", trade)
}

// List returns the user's trades, newest first
func (h *TradeHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.tradeService.List(c.Request.Context(), *userID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Trades retrieved", result)
}

// Get returns a single trade
func (h *TradeHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trade ID")
		return
	}

	trade, err := h.tradeService.Get(c.Request.Context(), *userID, tradeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trade retrieved", trade)
}
