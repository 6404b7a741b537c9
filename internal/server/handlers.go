package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/matzehuels/linkchart/pkg/buildinfo"
	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
	"github.com/matzehuels/linkchart/pkg/graph"
	"github.com/matzehuels/linkchart/pkg/layout"
	"github.com/matzehuels/linkchart/pkg/pipeline"
)

// layoutRequest is the body of POST /v1/layout. Config starts from the
// server defaults, so clients only send the fields they change.
type layoutRequest struct {
	Graph   graph.Graph   `json:"graph"`
	Layout  string        `json:"layout"`
	Seed    uint64        `json:"seed"`
	Config  layout.Config `json:"config"`
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Refresh bool          `json:"refresh"`
}

type layoutResponse struct {
	graph.Result
	RunID      string  `json:"run_id"`
	GraphHash  string  `json:"graph_hash"`
	CacheHit   bool    `json:"cache_hit"`
	DurationMS float64 `json:"duration_ms"`
}

// fitRequest is the body of POST /v1/fit.
type fitRequest struct {
	Positions layout.Positions `json:"positions"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	Config    layout.Config    `json:"config"`
}

type layoutsResponse struct {
	Layouts []string `json:"layouts"`
	Default string   `json:"default"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      lcerrors.Code `json:"code"`
	Message   string        `json:"message"`
	RequestID string        `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, lcerrors.New(lcerrors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) handleLayouts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, layoutsResponse{Layouts: layout.Names(), Default: s.layout})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req := layoutRequest{Layout: s.layout, Config: s.config}
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Run(r.Context(), req.Graph, pipeline.Options{
		Layout:  req.Layout,
		Config:  req.Config,
		Seed:    req.Seed,
		Width:   req.Width,
		Height:  req.Height,
		Refresh: req.Refresh,
		Logger:  s.logger.With("request_id", requestIDFrom(r.Context())),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Result:     res.Output(),
		RunID:      res.ID,
		GraphHash:  res.GraphHash,
		CacheHit:   res.CacheHit,
		DurationMS: float64(res.Stats.Duration) / float64(time.Millisecond),
	})
}

func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	req := fitRequest{Config: s.config}
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := pipeline.Fit(req.Positions, req.Width, req.Height, req.Config)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// decode reads a size-limited JSON body into v, rejecting unknown fields.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return lcerrors.New(lcerrors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return lcerrors.Wrap(lcerrors.ErrCodeInvalidFormat, err, "decode request")
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := lcerrors.HTTPStatus(err)
	code := lcerrors.GetCode(err)
	if code == "" {
		code = lcerrors.ErrCodeInternal
	}
	msg := lcerrors.UserMessage(err)
	var e *lcerrors.Error
	if errors.As(err, &e) && e.Cause != nil && status < http.StatusInternalServerError {
		msg += ": " + e.Cause.Error()
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", requestIDFrom(r.Context()))
	}
	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   msg,
		RequestID: requestIDFrom(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
