package handlers

import (
	"context"
	"net/http"

	"github.com/Rakhulsr/go-logistics/app/helpers"
	"github.com/Rakhulsr/go-logistics/app/services/exchange"
	"github.com/Rakhulsr/go-logistics/app/utils/format"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type Valuer interface {
	Estimate(ctx context.Context, req exchange.ValuationRequest) (*exchange.ValuationResult, error)
}

type ExchangeHandler struct {
	valuator Valuer
	render   *render.Render
	logger   *zap.Logger
}

func NewExchangeHandler(valuator Valuer, render *render.Render, logger *zap.Logger) *ExchangeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExchangeHandler{valuator: valuator, render: render, logger: logger.Named("exchange")}
}

type valuationView struct {
	*exchange.ValuationResult
	EstimatedValueDisplay string `json:"estimated_value_display"`
}

// Valuate handles POST /api/exchange/valuations.
func (h *ExchangeHandler) Valuate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := helpers.RequestID(ctx)

	var req exchange.ValuationRequest
	if err := helpers.DecodeJSONBody(w, r, &req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, helpers.Fail(err.Error(), requestID))
		return
	}

	res, err := h.valuator.Estimate(ctx, req)
	if err != nil {
		renderError(h.render, h.logger, w, err, requestID)
		return
	}

	h.render.JSON(w, http.StatusOK, helpers.Success(valuationView{
		ValuationResult:       res,
		EstimatedValueDisplay: format.Rupee(res.EstimatedValue),
	}, requestID))
}
