package dashboard

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"veggie-dashboard/config"
	"veggie-dashboard/filter"
	"veggie-dashboard/models"
	"veggie-dashboard/pricerange"

	"github.com/gorilla/mux"
)

// Server serves the interactive price dashboard over an immutable dataset
type Server struct {
	dataset      models.Dataset
	updatedAt    time.Time
	filter       *filter.Filter
	step         int
	tickInterval int
	page         *template.Template
}

// NewServer creates a dashboard Server for the given dataset. The dataset is
// injected fully built and never changes afterwards, so request handlers read
// it without locking.
func NewServer(ds models.Dataset, updatedAt time.Time, cfg *config.Config) *Server {
	return &Server{
		dataset:      ds,
		updatedAt:    updatedAt,
		filter:       filter.NewFilter(cfg.Histogram.Bins),
		step:         cfg.Slider.Step,
		tickInterval: cfg.Slider.TickInterval,
		page:         template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Router builds the HTTP routes
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods("GET")
	r.HandleFunc("/api/view", s.handleView).Methods("GET")
	return r
}

// ListenAndServe starts serving the dashboard on addr
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}

// pageData feeds the dashboard page template
type pageData struct {
	Title     string
	UpdatedAt string
	HasData   bool
	Min       float64
	Max       float64
	Step      int
	Ticks     []pricerange.Tick
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	min, max, ok := s.dataset.Bounds()

	data := pageData{
		Title:     "Chennai Vegetable Price Dashboard",
		UpdatedAt: s.updatedAt.Format("2006-01-02 15:04"),
		HasData:   ok,
		Min:       min,
		Max:       max,
		Step:      s.step,
		Ticks:     pricerange.Ticks(min, max, s.tickInterval),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		log.Printf("Error rendering dashboard page: %v\n", err)
	}
}

// handleView returns the filtered records and chart payloads for the
// requested price range. Missing or unparseable bounds default to the
// dataset bounds, so a bare request returns the unfiltered view.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	min, max, _ := s.dataset.Bounds()
	fr := models.FilterRange{Low: min, High: max}

	q := r.URL.Query()
	if v := q.Get("low"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			fr.Low = f
		}
	}
	if v := q.Get("high"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			fr.High = f
		}
	}
	if fr.Low > fr.High {
		http.Error(w, "low must not exceed high", http.StatusBadRequest)
		return
	}

	vm := s.filter.View(s.dataset, fr)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(vm); err != nil {
		log.Printf("Error encoding view: %v\n", err)
	}
}
