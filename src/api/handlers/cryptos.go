package handlers

import (
	"context"
	"net/http"
	"time"
)

// GetTopCryptos answers with the top USDT pairs by 24h quote volume as a
// flat JSON array of interleaved symbol/price strings.
func (h *Handler) GetTopCryptos(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pairs, err := h.Controller.GetTopCryptos(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, pairs, 200)
}
