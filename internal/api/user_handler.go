package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lmeyers/users-api/internal/api/shared"
	"github.com/lmeyers/users-api/internal/store"
)

// UserHandler handles user CRUD API requests. Each handler is a short
// linear pipeline: parse, validate, make exactly one store call, classify
// the outcome, and write an envelope. No retries are performed at this
// layer; a transient persistence failure surfaces immediately as a 500.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given store.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		validator: validator.New(),
	}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, users)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidUserID)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, user)
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userStore.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, user)
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidUserID)
		return
	}

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userStore.Update(r.Context(), id, req.Name, req.Email)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}. A successful delete responds with
// data:null; deleting the same ID again yields a 400 not-found.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidUserID)
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, nil)
}
