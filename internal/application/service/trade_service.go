package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
	"github.com/StephenEkwedike/FunRobin/pkg/apperror"
	"github.com/StephenEkwedike/FunRobin/pkg/pagination"
)

// TradeService records simulated trades and computes their outcomes
type TradeService struct {
	tradeRepo repository.TradeRepository
}

// NewTradeService creates a new trade service
func NewTradeService(tradeRepo repository.TradeRepository) *TradeService {
	return &TradeService{tradeRepo: tradeRepo}
}

// OpenTradeInput carries the fields needed to open a position
type OpenTradeInput struct {
	Broker     string
	Symbol     string
	AssetType  string
	Side       enum.TradeSide
	Quantity   float64
	Multiplier float64
	EntryPrice float64
	Fees       float64
	OptionType *enum.OptionType
	Strike     *float64
	Expiry     *string
	OpenedAt   *time.Time
}

// Open records a new open position for the user
func (s *TradeService) Open(ctx context.Context, userID uuid.UUID, input OpenTradeInput) (*entity.Trade, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}
	if input.EntryPrice <= 0 {
		return nil, apperror.NewBadRequestError("Entry price must be positive")
	}
	if input.Multiplier <= 0 {
		input.Multiplier = 1
	}

	openedAt := time.Now()
	if input.OpenedAt != nil {
		openedAt = *input.OpenedAt
	}

	assetType := input.AssetType
	if assetType == "" {
		assetType = "option"
	}

	trade := &entity.Trade{
		UserID:     userID,
		Broker:     input.Broker,
		Symbol:     input.Symbol,
		AssetType:  assetType,
		Side:       input.Side,
		Status:     enum.TradeStatusOpen,
		Quantity:   input.Quantity,
		Multiplier: input.Multiplier,
		EntryPrice: input.EntryPrice,
		Fees:       input.Fees,
		OptionType: input.OptionType,
		Strike:     input.Strike,
		Expiry:     input.Expiry,
		OpenedAt:   openedAt,
	}

	if err := s.tradeRepo.Create(ctx, trade); err != nil {
		return nil, err
	}
	return trade, nil
}

// Close settles an open position at exitPrice, computing realized PnL and
// return. For long positions pnl = (exit - entry) * qty * mult - fees; shorts
// invert the price leg.
func (s *TradeService) Close(ctx context.Context, userID, tradeID uuid.UUID, exitPrice float64, extraFees float64, closedAt *time.Time) (*entity.Trade, error) {
	if exitPrice < 0 {
		return nil, apperror.NewBadRequestError("Exit price cannot be negative")
	}

	trade, err := s.tradeRepo.GetByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if trade == nil || trade.UserID != userID {
		return nil, apperror.NewNotFoundError("Trade")
	}
	if trade.Status == enum.TradeStatusClosed {
		return nil, apperror.NewConflictError("Trade is already closed")
	}

	when := time.Now()
	if closedAt != nil {
		when = *closedAt
	}

	trade.ExitPrice = &exitPrice
	trade.Fees += extraFees
	trade.Status = enum.TradeStatusClosed
	trade.ClosedAt = &when

	pnl := computePnL(trade.Side, trade.EntryPrice, exitPrice, trade.Quantity, trade.Multiplier, trade.Fees)
	trade.PnL = &pnl

	if basis := trade.CostBasis(); basis > 0 {
		ret := pnl / basis * 100
		trade.ReturnPct = &ret
	}

	if err := s.tradeRepo.Update(ctx, trade); err != nil {
		return nil, err
	}
	return trade, nil
}

// List returns the user's trades, newest first
func (s *TradeService) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Trade], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	trades, total, err := s.tradeRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(trades, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Get returns a single trade owned by the user
func (s *TradeService) Get(ctx context.Context, userID, tradeID uuid.UUID) (*entity.Trade, error) {
	trade, err := s.tradeRepo.GetByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if trade == nil || trade.UserID != userID {
		return nil, apperror.NewNotFoundError("Trade")
	}
	return trade, nil
}

func computePnL(side enum.TradeSide, entry, exit, qty, mult, fees float64) float64 {
	gross := (exit - entry) * qty * mult
	if !side.IsLong() {
		gross = -gross
	}
	return gross - fees
}
