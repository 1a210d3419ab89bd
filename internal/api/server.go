package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/snippet-engine/backend/internal/engine"
)

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router *http.ServeMux
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger,
		Router: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/search", s.handleSearch)
	s.Router.HandleFunc("/api/v1/recommend", s.handleRecommend)
	s.Router.HandleFunc("/api/v1/select", s.handleSelect)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(port string) error {
	s.Logger.Infof("Starting API Server on %s", port)
	return http.ListenAndServe(port, s.Router)
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type SearchResponse struct {
	Query          string         `json:"query"`
	ActiveCategory string         `json:"active_category"`
	Categories     []CategoryView `json:"categories"`
}

type CategoryView struct {
	Key   string     `json:"key"`
	Title string     `json:"title"`
	Items []ItemView `json:"items"`
}

type ItemView struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

type RecommendResponse struct {
	Query   string           `json:"query"`
	Results []ScoredItemView `json:"results"`
}

type ScoredItemView struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type SelectResponse struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

type StatusResponse struct {
	QueriesServed  int64  `json:"queries_served"`
	ItemsSelected  int64  `json:"items_selected"`
	CatalogVersion int64  `json:"catalog_version"`
	CatalogItems   int    `json:"catalog_items"`
	Uptime         string `json:"uptime"`
}

// Handlers

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	result := s.Engine.Search(query)

	response := SearchResponse{
		Query:          result.Query,
		ActiveCategory: result.ActiveCategory,
		Categories:     make([]CategoryView, len(result.Categories)),
	}

	for i, cat := range result.Categories {
		view := CategoryView{
			Key:   cat.Key,
			Title: cat.Title,
			Items: make([]ItemView, len(cat.Items)),
		}
		for j, item := range cat.Items {
			view.Items[j] = ItemView{Name: item.Name, Body: item.Body}
		}
		response.Categories[i] = view
	}

	jsonResponse(w, http.StatusOK, response)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	hits := s.Engine.Recommend(query)

	response := RecommendResponse{
		Query:   query,
		Results: make([]ScoredItemView, len(hits)),
	}
	for i, hit := range hits {
		response.Results[i] = ScoredItemView{
			Name:  hit.Item.Name,
			Score: hit.Score,
		}
	}

	jsonResponse(w, http.StatusOK, response)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	if req.Name == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Name is required"})
		return
	}

	item, ok := s.Engine.Select(req.Name)
	if !ok {
		jsonResponse(w, http.StatusNotFound, ErrorResponse{Error: "Unknown item"})
		return
	}

	jsonResponse(w, http.StatusOK, SelectResponse{Name: item.Name, Body: item.Body})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Engine.Stats()

	jsonResponse(w, http.StatusOK, StatusResponse{
		QueriesServed:  stats.QueriesServed,
		ItemsSelected:  stats.ItemsSelected,
		CatalogVersion: stats.CatalogVersion,
		CatalogItems:   s.Engine.Catalog().Len(),
		Uptime:         time.Since(stats.StartTime).String(),
	})
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
