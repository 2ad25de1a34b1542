package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/khmershop/labelbot/constants"
	"github.com/khmershop/labelbot/internal/label"
)

// Handler serves the browser-printable label page. This path has no link to
// the extractor: it renders whatever the query string carries, substituting
// display placeholders for anything absent. Missing parameters are never an
// error.
type Handler struct {
	log *slog.Logger
}

func NewHandler(log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{log: log}
}

// NewRouter builds the label server routes.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/print", h.PrintLabel)
	r.Get("/healthz", h.Health)
	return r
}

// PrintLabel renders the HTML label from name/phone/total/payment query
// parameters.
func (h *Handler) PrintLabel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := label.View{
		Name:    paramOr(q.Get("name"), constants.DefaultName),
		Phone:   paramOr(q.Get("phone"), constants.DefaultPhone),
		Total:   paramOr(q.Get("total"), constants.DefaultTotal),
		Payment: paramOr(q.Get("payment"), constants.DefaultPayment),
	}

	out, err := label.RenderHTML(v)
	if err != nil {
		h.log.Error("print.render_failed", "request_id", middleware.GetReqID(r.Context()), "err", err)
		http.Error(w, "label render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(out)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func paramOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
