package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Rakhulsr/go-logistics/app/helpers"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"github.com/Rakhulsr/go-logistics/app/utils/format"
	"github.com/Rakhulsr/go-logistics/app/utils/validation"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type Quoter interface {
	Quote(ctx context.Context, req rating.QuoteRequest) (*rating.QuoteResult, error)
	Carriers() []rating.Carrier
}

type ShippingHandler struct {
	engine Quoter
	render *render.Render
	logger *zap.Logger
}

func NewShippingHandler(engine Quoter, render *render.Render, logger *zap.Logger) *ShippingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShippingHandler{engine: engine, render: render, logger: logger.Named("shipping")}
}

type quoteView struct {
	rating.CarrierQuote
	TotalCostDisplay string `json:"total_cost_display"`
}

type quoteResultView struct {
	*rating.QuoteResult
	Quotes       []quoteView `json:"quotes"`
	Recommended  *quoteView  `json:"recommended"`
	Alternatives []quoteView `json:"alternatives"`
}

func newQuoteView(q rating.CarrierQuote) quoteView {
	return quoteView{CarrierQuote: q, TotalCostDisplay: format.Rupee(q.TotalCost)}
}

func newQuoteResultView(res *rating.QuoteResult) quoteResultView {
	view := quoteResultView{
		QuoteResult:  res,
		Quotes:       make([]quoteView, 0, len(res.Quotes)),
		Alternatives: make([]quoteView, 0, len(res.Alternatives)),
	}
	for _, q := range res.Quotes {
		view.Quotes = append(view.Quotes, newQuoteView(q))
	}
	for _, q := range res.Alternatives {
		view.Alternatives = append(view.Alternatives, newQuoteView(q))
	}
	if res.Recommended != nil {
		rec := newQuoteView(*res.Recommended)
		view.Recommended = &rec
	}
	return view
}

// Quote handles POST /api/shipping/quotes. A valid request that no carrier
// can serve still answers 200 with the engine's message.
func (h *ShippingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := helpers.RequestID(ctx)

	var req rating.QuoteRequest
	if err := helpers.DecodeJSONBody(w, r, &req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, helpers.Fail(err.Error(), requestID))
		return
	}

	res, err := h.engine.Quote(ctx, req)
	if err != nil {
		h.renderError(w, err, requestID)
		return
	}

	body := helpers.Success(newQuoteResultView(res), requestID)
	if res.NoServiceableOptions() {
		body["message"] = res.Message
	}
	h.render.JSON(w, http.StatusOK, body)
}

// Carriers handles GET /api/shipping/carriers.
func (h *ShippingHandler) Carriers(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, helpers.Success(h.engine.Carriers(), helpers.RequestID(r.Context())))
}

func (h *ShippingHandler) renderError(w http.ResponseWriter, err error, requestID string) {
	renderError(h.render, h.logger, w, err, requestID)
}

func renderError(rnd *render.Render, logger *zap.Logger, w http.ResponseWriter, err error, requestID string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		body := helpers.Fail("validation failed", requestID)
		body["errors"] = verr.Fields
		rnd.JSON(w, http.StatusUnprocessableEntity, body)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		rnd.JSON(w, http.StatusServiceUnavailable, helpers.Fail("request cancelled", requestID))
	default:
		logger.Error("request failed", zap.Error(err), zap.String("request_id", requestID))
		rnd.JSON(w, http.StatusInternalServerError, helpers.Fail("internal error", requestID))
	}
}
