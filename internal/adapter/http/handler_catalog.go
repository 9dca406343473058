package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glasor/glazing-backend/internal/domain"
)

type productModelRequest struct {
	Name            string   `json:"name"`
	BasePrice       float64  `json:"base_price"`
	CostPerMmWidth  float64  `json:"cost_per_mm_width"`
	CostPerMmHeight float64  `json:"cost_per_mm_height"`
	AccessoryPrice  *float64 `json:"accessory_price,omitempty"`
	MinWidthMm      int      `json:"min_width_mm"`
	MinHeightMm     int      `json:"min_height_mm"`
	MaxWidthMm      int      `json:"max_width_mm"`
	MaxHeightMm     int      `json:"max_height_mm"`
	Active          bool     `json:"active"`
}

type productModelResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	BasePrice       float64  `json:"base_price"`
	CostPerMmWidth  float64  `json:"cost_per_mm_width"`
	CostPerMmHeight float64  `json:"cost_per_mm_height"`
	AccessoryPrice  *float64 `json:"accessory_price,omitempty"`
	MinWidthMm      int      `json:"min_width_mm"`
	MinHeightMm     int      `json:"min_height_mm"`
	MaxWidthMm      int      `json:"max_width_mm"`
	MaxHeightMm     int      `json:"max_height_mm"`
	Active          bool     `json:"active"`
}

type glassTypeRequest struct {
	Name             string  `json:"name"`
	PricePerSqm      float64 `json:"price_per_sqm"`
	DiscountWidthMm  int     `json:"discount_width_mm"`
	DiscountHeightMm int     `json:"discount_height_mm"`
	Active           bool    `json:"active"`
}

type glassTypeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	PricePerSqm      float64 `json:"price_per_sqm"`
	DiscountWidthMm  int     `json:"discount_width_mm"`
	DiscountHeightMm int     `json:"discount_height_mm"`
	Active           bool    `json:"active"`
}

type colorOptionRequest struct {
	Name             string  `json:"name"`
	SurchargePercent float64 `json:"surcharge_percent"`
	Active           bool    `json:"active"`
}

type colorOptionResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	SurchargePercent float64 `json:"surcharge_percent"`
	Active           bool    `json:"active"`
}

// MinimumBillingUnit is a json.Number so the decimal text on the wire is
// parsed exactly, never through a float64 intermediate.
type catalogServiceRequest struct {
	Name               string       `json:"name"`
	Unit               string       `json:"unit"`
	Rate               float64      `json:"rate"`
	MinimumBillingUnit *json.Number `json:"minimum_billing_unit,omitempty"`
	Active             bool         `json:"active"`
}

type catalogServiceResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Unit               string   `json:"unit"`
	Rate               float64  `json:"rate"`
	MinimumBillingUnit *float64 `json:"minimum_billing_unit,omitempty"`
	Active             bool     `json:"active"`
}

func toProductModel(req productModelRequest) (*domain.ProductModel, error) {
	base, err := domain.NewMoney(req.BasePrice)
	if err != nil {
		return nil, err
	}
	perW, err := domain.NewMoney(req.CostPerMmWidth)
	if err != nil {
		return nil, err
	}
	perH, err := domain.NewMoney(req.CostPerMmHeight)
	if err != nil {
		return nil, err
	}
	var accessory *domain.Money
	if req.AccessoryPrice != nil {
		a, err := domain.NewMoney(*req.AccessoryPrice)
		if err != nil {
			return nil, err
		}
		accessory = &a
	}
	return &domain.ProductModel{
		Name:            req.Name,
		BasePrice:       base,
		CostPerMmWidth:  perW,
		CostPerMmHeight: perH,
		AccessoryPrice:  accessory,
		MinWidthMm:      req.MinWidthMm,
		MinHeightMm:     req.MinHeightMm,
		MaxWidthMm:      req.MaxWidthMm,
		MaxHeightMm:     req.MaxHeightMm,
		Active:          req.Active,
	}, nil
}

func toProductModelResponse(m *domain.ProductModel) productModelResponse {
	var accessory *float64
	if m.AccessoryPrice != nil {
		a := m.AccessoryPrice.Float64()
		accessory = &a
	}
	return productModelResponse{
		ID:              m.ID.String(),
		Name:            m.Name,
		BasePrice:       m.BasePrice.Float64(),
		CostPerMmWidth:  m.CostPerMmWidth.Float64(),
		CostPerMmHeight: m.CostPerMmHeight.Float64(),
		AccessoryPrice:  accessory,
		MinWidthMm:      m.MinWidthMm,
		MinHeightMm:     m.MinHeightMm,
		MaxWidthMm:      m.MaxWidthMm,
		MaxHeightMm:     m.MaxHeightMm,
		Active:          m.Active,
	}
}

func toGlassType(req glassTypeRequest) (*domain.GlassType, error) {
	price, err := domain.NewMoney(req.PricePerSqm)
	if err != nil {
		return nil, err
	}
	return &domain.GlassType{
		Name:             req.Name,
		PricePerSqm:      price,
		DiscountWidthMm:  req.DiscountWidthMm,
		DiscountHeightMm: req.DiscountHeightMm,
		Active:           req.Active,
	}, nil
}

func toGlassTypeResponse(g *domain.GlassType) glassTypeResponse {
	return glassTypeResponse{
		ID:               g.ID.String(),
		Name:             g.Name,
		PricePerSqm:      g.PricePerSqm.Float64(),
		DiscountWidthMm:  g.DiscountWidthMm,
		DiscountHeightMm: g.DiscountHeightMm,
		Active:           g.Active,
	}
}

func toColorOption(req colorOptionRequest) *domain.ColorOption {
	return &domain.ColorOption{
		Name:             req.Name,
		SurchargePercent: decimal.NewFromFloat(req.SurchargePercent),
		Active:           req.Active,
	}
}

func toColorOptionResponse(c *domain.ColorOption) colorOptionResponse {
	return colorOptionResponse{
		ID:               c.ID.String(),
		Name:             c.Name,
		SurchargePercent: c.SurchargePercent.InexactFloat64(),
		Active:           c.Active,
	}
}

func toCatalogService(req catalogServiceRequest) (*domain.Service, error) {
	unit, err := domain.ParseBillingUnit(req.Unit)
	if err != nil {
		return nil, err
	}
	rate, err := domain.NewMoney(req.Rate)
	if err != nil {
		return nil, err
	}
	var minimum *decimal.Decimal
	if req.MinimumBillingUnit != nil {
		m, err := decimal.NewFromString(req.MinimumBillingUnit.String())
		if err != nil {
			return nil, fmt.Errorf("%w: invalid minimum_billing_unit: %v", domain.ErrValidation, err)
		}
		minimum = &m
	}
	return &domain.Service{
		Name:               req.Name,
		Unit:               unit,
		Rate:               rate,
		MinimumBillingUnit: minimum,
		Active:             req.Active,
	}, nil
}

func toCatalogServiceResponse(svc *domain.Service) catalogServiceResponse {
	var minimum *float64
	if svc.MinimumBillingUnit != nil {
		m := svc.MinimumBillingUnit.InexactFloat64()
		minimum = &m
	}
	return catalogServiceResponse{
		ID:                 svc.ID.String(),
		Name:               svc.Name,
		Unit:               string(svc.Unit),
		Rate:               svc.Rate.Float64(),
		MinimumBillingUnit: minimum,
		Active:             svc.Active,
	}
}

func activeOnlyParam(r *http.Request) bool {
	return r.URL.Query().Get("active_only") == "true"
}

func idParam(r *http.Request) (uuid.UUID, error) {
	return parseUUID("id", chi.URLParam(r, "id"))
}

func (s *Server) handleCreateModel(w http.ResponseWriter, r *http.Request) {
	var req productModelRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	model, err := toProductModel(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.CatalogService.CreateModel(r.Context(), model); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductModelResponse(model))
}

func (s *Server) handleUpdateModel(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req productModelRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	model, err := toProductModel(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	model.ID = id
	if err := s.CatalogService.UpdateModel(r.Context(), model); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductModelResponse(model))
}

func (s *Server) handleGetModel(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	model, err := s.CatalogService.GetModel(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductModelResponse(model))
}

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := s.CatalogService.ListModels(r.Context(), activeOnlyParam(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := []productModelResponse{}
	for _, m := range models {
		resp = append(resp, toProductModelResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateGlassType(w http.ResponseWriter, r *http.Request) {
	var req glassTypeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	glass, err := toGlassType(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.CatalogService.CreateGlassType(r.Context(), glass); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGlassTypeResponse(glass))
}

func (s *Server) handleUpdateGlassType(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req glassTypeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	glass, err := toGlassType(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	glass.ID = id
	if err := s.CatalogService.UpdateGlassType(r.Context(), glass); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGlassTypeResponse(glass))
}

func (s *Server) handleGetGlassType(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	glass, err := s.CatalogService.GetGlassType(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGlassTypeResponse(glass))
}

func (s *Server) handleListGlassTypes(w http.ResponseWriter, r *http.Request) {
	glasses, err := s.CatalogService.ListGlassTypes(r.Context(), activeOnlyParam(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := []glassTypeResponse{}
	for _, g := range glasses {
		resp = append(resp, toGlassTypeResponse(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateColor(w http.ResponseWriter, r *http.Request) {
	var req colorOptionRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	color := toColorOption(req)
	if err := s.CatalogService.CreateColor(r.Context(), color); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toColorOptionResponse(color))
}

func (s *Server) handleUpdateColor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req colorOptionRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	color := toColorOption(req)
	color.ID = id
	if err := s.CatalogService.UpdateColor(r.Context(), color); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toColorOptionResponse(color))
}

func (s *Server) handleGetColor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	color, err := s.CatalogService.GetColor(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toColorOptionResponse(color))
}

func (s *Server) handleListColors(w http.ResponseWriter, r *http.Request) {
	colors, err := s.CatalogService.ListColors(r.Context(), activeOnlyParam(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := []colorOptionResponse{}
	for _, c := range colors {
		resp = append(resp, toColorOptionResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var req catalogServiceRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	svc, err := toCatalogService(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.CatalogService.CreateService(r.Context(), svc); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCatalogServiceResponse(svc))
}

func (s *Server) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req catalogServiceRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	svc, err := toCatalogService(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	svc.ID = id
	if err := s.CatalogService.UpdateService(r.Context(), svc); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogServiceResponse(svc))
}

func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	svc, err := s.CatalogService.GetService(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogServiceResponse(svc))
}

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.CatalogService.ListServices(r.Context(), activeOnlyParam(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := []catalogServiceResponse{}
	for _, svc := range services {
		resp = append(resp, toCatalogServiceResponse(svc))
	}
	writeJSON(w, http.StatusOK, resp)
}
