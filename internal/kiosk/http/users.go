package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/service"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/httpx"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/slogx"
)

// UsersHandler covers the identity CRUD surface.
type UsersHandler struct {
	UserService *service.UserService
	Metrics     *Metrics
}

// HandleList handles GET /api/users
//
//	@Summary	List enrolled users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}	UserResponse
//	@Router		/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.List(ctx)
	if err != nil {
		log.Error("failed to list users", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "server_error",
			Msg:   "No se pudieron leer los usuarios",
		})
		return
	}

	h.Metrics.SetEnrolledUsers(len(users))

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{ID: u.ID, Nombre: u.Name, Rol: u.Role})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleEdit handles POST /api/edit-user
//
//	@Summary	Edit a user record
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		EditUserRequest	true	"id, new name, new role"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	ErrorResponse	"invalid input"
//	@Failure	404		{object}	ErrorResponse	"unknown id"
//	@Failure	409		{object}	ErrorResponse	"duplicate name"
//	@Router		/api/edit-user [post].
func (h *UsersHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req EditUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid_request",
			Msg:   "Cuerpo de la solicitud invalido",
		})
		return
	}

	err := h.UserService.Edit(ctx, domain.User{ID: req.ID, Name: req.Nombre, Role: req.Rol})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID), errors.Is(err, service.ErrNameTooShort):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid_input",
				Msg:   "Datos invalidos",
			})
		case errors.Is(err, service.ErrDuplicateName):
			httpx.WriteJSON(w, http.StatusConflict, ErrorResponse{
				Error: "duplicate_name",
				Msg:   "El nombre ya esta registrado",
			})
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
				Error: "not_found",
				Msg:   "Usuario no encontrado",
			})
		default:
			log.Error("failed to edit user", "error", err, "id", req.ID)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: "server_error",
				Msg:   "No se pudo actualizar el usuario",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Usuario actualizado correctamente"})
}

// HandleDelete handles POST /api/delete-user
//
//	@Summary	Delete a user and their fingerprint template
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		DeleteUserRequest	true	"id to delete"
//	@Success	200		{object}	MessageResponse		"message and removed user's name"
//	@Failure	404		{object}	ErrorResponse		"unknown id"
//	@Router		/api/delete-user [post].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid_request",
			Msg:   "Cuerpo de la solicitud invalido",
		})
		return
	}

	removed, err := h.UserService.Delete(ctx, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
				Error: "not_found",
				Msg:   "Usuario no encontrado",
			})
			return
		}
		log.Error("failed to delete user", "error", err, "id", req.ID)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "server_error",
			Msg:   "No se pudo eliminar el usuario",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{
		Message: "Usuario eliminado correctamente",
		Nombre:  removed.Name,
	})
}

// HandleNextID handles GET /api/next-id
//
//	@Summary	Probe the next enrollment slot
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	NextIDResponse
//	@Router		/api/next-id [get].
func (h *UsersHandler) HandleNextID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	next, err := h.UserService.NextID(ctx)
	if err != nil {
		log.Error("failed to compute next id", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "server_error",
			Msg:   "No se pudo calcular el siguiente id",
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, NextIDResponse{NextID: next})
}

// HandleCheckName handles POST /api/check-name
//
//	@Summary	Probe name availability
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CheckNameRequest	true	"candidate name"
//	@Success	200		{object}	CheckNameResponse
//	@Router		/api/check-name [post].
func (h *UsersHandler) HandleCheckName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CheckNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid_request",
			Msg:   "Cuerpo de la solicitud invalido",
		})
		return
	}

	exists, err := h.UserService.NameExists(ctx, req.Name)
	if err != nil {
		log.Error("failed to check name", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "server_error",
			Msg:   "No se pudo verificar el nombre",
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, CheckNameResponse{Exists: exists})
}
