package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/glasor/glazing-backend/internal/usecase/quote"
)

// handlePriceItem prices a single item without persisting anything.
func (s *Server) handlePriceItem(w http.ResponseWriter, r *http.Request) {
	var req priceItemRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	input, err := toPriceItemInput(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	breakdown, err := s.QuoteService.PriceItem(r.Context(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBreakdownResponse(breakdown))
}

func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	input := quote.CreateQuoteInput{
		Reference:    req.Reference,
		CustomerName: req.CustomerName,
	}
	for _, item := range req.Items {
		itemInput, err := toPriceItemInput(item)
		if err != nil {
			s.writeError(w, err)
			return
		}
		input.Items = append(input.Items, itemInput)
	}

	created, err := s.QuoteService.CreateQuote(r.Context(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuoteResponse(created))
}

func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	q, err := s.QuoteService.GetQuote(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuoteResponse(q))
}

func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	quotes, total, err := s.QuoteService.ListQuotes(r.Context(), limit, offset)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := quoteListResponse{Quotes: []quoteResponse{}, Total: total}
	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, toQuoteResponse(q))
	}

	writeJSON(w, http.StatusOK, resp)
}
