package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"whale/src/schemas"
	"whale/src/utils"
)

// ProcessTransaction accepts a submitted transaction, has it enriched and
// persisted, and answers with the assigned document id. Response bodies are
// plain text and fixed by the public contract of the endpoint.
func (h *Handler) ProcessTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var request schemas.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Empty() {
		h.respondText(w, http.StatusBadRequest, "Invalid transaction data.")
		return
	}

	response, err := h.Controller.ProcessTransaction(ctx, &request)
	if err != nil {
		utils.LoggerFromContext(ctx).WithField("error", err.Error()).Error("transaction processing failed")
		h.respondText(w, http.StatusInternalServerError, "Erro: "+err.Error())
		return
	}

	h.respondText(w, http.StatusOK, "Transação salva com sucesso. ID: "+response.ID)
}
