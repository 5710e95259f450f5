package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"ledgerchat/internal/core"
)

type chatRequest struct {
	Message string `json:"message"`
	// Expenses, when present, replaces the server-side ledger before the
	// message is handled. A nil pointer means the client sent no list.
	Expenses *[]core.Expense `json:"expenses"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "Field 'message' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.chatTimeout)
	defer cancel()

	var clientExpenses []core.Expense
	if req.Expenses != nil {
		clientExpenses = *req.Expenses
		if clientExpenses == nil {
			clientExpenses = []core.Expense{}
		}
	}

	resp := s.assistant.Handle(ctx, req.Message, clientExpenses)
	respondJSON(w, http.StatusOK, resp)
}
