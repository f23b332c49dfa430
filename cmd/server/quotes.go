package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kbworks/estimator/internal/catalog"
	"github.com/kbworks/estimator/internal/pricing"
)

type quote struct {
	ID         int64
	CreatedAt  string
	Kind       string
	Experience string
	Title      string
	Notes      string
	ValuesJSON string
	Total      float64
}

type createQuoteRequest struct {
	Kind       string           `json:"kind"`
	Experience string           `json:"experience"`
	Title      string           `json:"title"`
	Notes      string           `json:"notes"`
	Values     pricing.Snapshot `json:"values"`
}

type quoteView struct {
	ID         int64            `json:"id"`
	CreatedAt  string           `json:"createdAt"`
	Kind       string           `json:"kind"`
	Experience string           `json:"experience,omitempty"`
	Title      string           `json:"title"`
	Notes      string           `json:"notes,omitempty"`
	Values     pricing.Snapshot `json:"values"`
	TotalPrice float64          `json:"totalPrice"`
}

func (s *server) handleQuoteCreate(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind, err := catalog.ParseKind(req.Kind)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Values == nil {
		req.Values = pricing.Snapshot{}
	}

	// The stored total is always the calculator's output, never a value
	// the client sent.
	inputs := s.catalogInputs(kind, req.Experience)
	total := pricing.CalculateTotal(inputs, req.Values)

	saved, err := s.insertQuote(req, total)
	if err != nil {
		s.logger.Error("failed to save quote", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to save quote")
		return
	}

	s.respondJSON(w, http.StatusCreated, quoteView{
		ID:         saved.ID,
		CreatedAt:  saved.CreatedAt,
		Kind:       saved.Kind,
		Experience: saved.Experience,
		Title:      saved.Title,
		Notes:      saved.Notes,
		Values:     req.Values,
		TotalPrice: saved.Total,
	})
}

type quoteListItem struct {
	ID         int64   `json:"id"`
	CreatedAt  string  `json:"createdAt"`
	Kind       string  `json:"kind"`
	Title      string  `json:"title"`
	TotalPrice float64 `json:"totalPrice"`
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.listQuotes(query)
	if err != nil {
		s.logger.Error("failed to load quotes", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load quotes")
		return
	}

	s.respondJSON(w, http.StatusOK, quotes)
}

func (s *server) handleQuoteSummary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		s.respondError(w, http.StatusBadRequest, "invalid quote id")
		return
	}

	q, err := s.getQuote(id)
	if errors.Is(err, sql.ErrNoRows) {
		s.respondError(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to load quote", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load quote")
		return
	}

	kind, err := catalog.ParseKind(q.Kind)
	if err != nil {
		s.logger.Error("stored quote has unknown kind", zap.Int64("id", q.ID), zap.String("kind", q.Kind))
		s.respondError(w, http.StatusInternalServerError, "quote has unknown catalog kind")
		return
	}

	var values pricing.Snapshot
	if err := json.Unmarshal([]byte(q.ValuesJSON), &values); err != nil {
		s.logger.Error("stored quote has malformed values", zap.Int64("id", q.ID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "quote has malformed values")
		return
	}

	inputs := s.catalogInputs(kind, q.Experience)
	s.respondJSON(w, http.StatusOK, buildSummary(q, inputs, values))
}

// Summary types mirror the grouped catalog but carry only answered fields,
// each with its value and price contribution. A document renderer consumes
// this as-is; layout stays out of the engine.
type summaryItem struct {
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	Value        any     `json:"value"`
	Quantity     float64 `json:"quantity,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Contribution float64 `json:"contribution"`
}

type summarySubcategory struct {
	Subcategory string        `json:"subcategory"`
	Title       string        `json:"title"`
	Items       []summaryItem `json:"items"`
}

type summaryCategory struct {
	Category      string               `json:"category"`
	Title         string               `json:"title"`
	Subcategories []summarySubcategory `json:"subcategories"`
}

type quoteSummary struct {
	ID         int64             `json:"id"`
	CreatedAt  string            `json:"createdAt"`
	Kind       string            `json:"kind"`
	Experience string            `json:"experience,omitempty"`
	Title      string            `json:"title"`
	Notes      string            `json:"notes,omitempty"`
	Categories []summaryCategory `json:"categories"`
	TotalPrice float64           `json:"totalPrice"`
}

func buildSummary(q quote, inputs []catalog.Input, values pricing.Snapshot) quoteSummary {
	summary := quoteSummary{
		ID:         q.ID,
		CreatedAt:  q.CreatedAt,
		Kind:       q.Kind,
		Experience: q.Experience,
		Title:      q.Title,
		Notes:      q.Notes,
		TotalPrice: q.Total,
		Categories: make([]summaryCategory, 0),
	}

	for _, group := range catalog.Group(inputs) {
		cat := summaryCategory{
			Category: group.Category,
			Title:    group.Title,
		}
		for _, sub := range group.Subcategories {
			sc := summarySubcategory{
				Subcategory: sub.Subcategory,
				Title:       sub.Title,
			}
			for _, in := range sub.Inputs {
				if !pricing.Answered(in, values) {
					continue
				}
				item := summaryItem{
					Name:         in.Name,
					Label:        in.Label,
					Value:        values[in.Name],
					Unit:         in.Unit,
					Contribution: pricing.ItemPrice(in, values),
				}
				if qty, ok := values[in.QuantityField].(float64); ok {
					item.Quantity = qty
				}
				sc.Items = append(sc.Items, item)
			}
			if len(sc.Items) > 0 {
				cat.Subcategories = append(cat.Subcategories, sc)
			}
		}
		if len(cat.Subcategories) > 0 {
			summary.Categories = append(summary.Categories, cat)
		}
	}

	return summary
}

func (s *server) insertQuote(req createQuoteRequest, total float64) (quote, error) {
	valuesJSON, err := json.Marshal(req.Values)
	if err != nil {
		return quote{}, fmt.Errorf("encode quote values: %w", err)
	}

	result, err := s.db.Exec(`
		INSERT INTO quotes (kind, experience, title, notes, values_json, total)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.Kind, req.Experience, strings.TrimSpace(req.Title), strings.TrimSpace(req.Notes), string(valuesJSON), total)
	if err != nil {
		return quote{}, fmt.Errorf("insert quote: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return quote{}, fmt.Errorf("read inserted quote id: %w", err)
	}

	return s.getQuote(id)
}

func (s *server) getQuote(id int64) (quote, error) {
	var q quote
	err := s.db.QueryRow(`
		SELECT id, created_at, kind, experience, COALESCE(title, ''), COALESCE(notes, ''), values_json, total
		FROM quotes
		WHERE id = ?
	`, id).Scan(&q.ID, &q.CreatedAt, &q.Kind, &q.Experience, &q.Title, &q.Notes, &q.ValuesJSON, &q.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quote{}, err
		}
		return quote{}, fmt.Errorf("query quote %d: %w", id, err)
	}
	return q, nil
}

func (s *server) listQuotes(query string) ([]quoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT id, created_at, kind, COALESCE(title, ''), total
		FROM quotes
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]quoteListItem, 0)
	for rows.Next() {
		var item quoteListItem
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.Kind, &item.Title, &item.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	return quotes, nil
}
