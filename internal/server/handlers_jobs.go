package server

import (
	"log"
	"net/http"

	"github.com/jonathan/job-aggregator/internal/types"
)

// handleJobs aggregates listings for the skill query parameter.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	req := types.SearchRequest{Skill: r.URL.Query().Get("skill")}
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "skill", Message: "Skill is required"}
		s.errorResponse(w, HTTPStatus(verr), publicMessage(verr))
		return
	}

	listings, err := s.searcher.Search(r.Context(), req.Skill)
	if err != nil {
		uerr := &ErrUpstream{Cause: err}
		log.Printf("[http] request_id=%s error fetching jobs for %q: %v", RequestIDFrom(r.Context()), req.Skill, err)
		s.errorResponse(w, HTTPStatus(uerr), publicMessage(uerr))
		return
	}
	if listings == nil {
		listings = []types.JobListing{}
	}

	s.jsonResponse(w, http.StatusOK, listings)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
