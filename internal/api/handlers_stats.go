package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.ListDocuments(r.Context())
	if err != nil {
		jsonError(w, "failed to read stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	byModel := map[string]int{}
	for _, m := range metas {
		byModel[m.Model]++
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"documents":   len(metas),
		"by_model":    byModel,
		"queue_depth": s.orchestrator.QueueDepth(),
		"cache_items": s.docCache.ItemCount(),
	})
}
