package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/service"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/httpx"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/slogx"
)

// EnrollHandler drives the two-sample enrollment protocol.
type EnrollHandler struct {
	EnrollService *service.EnrollService
	Metrics       *Metrics
}

// HandleStart handles GET /api/fingerprint/start
//
//	@Summary		Advance enrollment capture
//	@Description	Advances the two-sample fingerprint capture by at most one step. The client polls this endpoint; absence of a finger keeps the current step. Step 2 carries the slot id to submit to /api/register.
//	@Tags			Enrollment
//	@Produce		json
//	@Success		200	{object}	EnrollStepResponse	"step, msg or step:2, id"
//	@Failure		400	{object}	ErrorResponse		"sensor failure, session reset"
//	@Failure		409	{object}	DuplicateResponse	"fingerprint already enrolled"
//	@Router			/api/fingerprint/start [get].
func (h *EnrollHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	res, err := h.EnrollService.Step(ctx)
	if err != nil {
		var dup *service.DuplicateFingerError
		switch {
		case errors.As(err, &dup):
			h.Metrics.enrollRejected.Inc()
			httpx.WriteJSON(w, http.StatusConflict, DuplicateResponse{
				Step:   -1,
				Error:  "duplicate",
				ID:     dup.ID,
				Nombre: dup.Name,
				Msg:    "La huella ya esta registrada como " + dup.Name,
			})
		case errors.Is(err, service.ErrBankFull):
			h.Metrics.enrollRejected.Inc()
			httpx.WriteJSON(w, http.StatusConflict, ErrorResponse{
				Error: "bank_full",
				Msg:   "No quedan espacios libres en el sensor",
			})
		default:
			log.Error("enrollment step failed", "error", err)
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "sensor_error",
				Msg:   "Error al procesar la huella, intente nuevamente",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, EnrollStepResponse{
		Step: int(res.Step),
		ID:   res.ID,
		Msg:  res.Msg,
	})
}

// HandleRegister handles POST /api/register
//
//	@Summary		Finalize enrollment
//	@Description	Persists the confirmed fingerprint model and creates the user record. The id must be the one handed out at capture step 2.
//	@Tags			Enrollment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"id from step 2, display name, role"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse	"invalid input or no pending session"
//	@Failure		409		{object}	ErrorResponse	"duplicate name"
//	@Router			/api/register [post].
func (h *EnrollHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid_request",
			Msg:   "Cuerpo de la solicitud invalido",
		})
		return
	}

	u, err := h.EnrollService.Register(ctx, req.ID, req.Name, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSession):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "no_session",
				Msg:   "No hay una huella confirmada pendiente",
			})
		case errors.Is(err, service.ErrSessionMismatch):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "session_mismatch",
				Msg:   "El id no corresponde a la huella capturada",
			})
		case errors.Is(err, service.ErrInvalidID):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid_id",
				Msg:   "Id fuera de rango",
			})
		case errors.Is(err, service.ErrNameTooShort):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid_name",
				Msg:   "El nombre debe tener al menos 3 caracteres",
			})
		case errors.Is(err, service.ErrDuplicateName):
			httpx.WriteJSON(w, http.StatusConflict, ErrorResponse{
				Error: "duplicate_name",
				Msg:   "El nombre ya esta registrado",
			})
		default:
			log.Error("registration failed", "error", err, "id", req.ID)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: "server_error",
				Msg:   "No se pudo guardar el usuario",
			})
		}
		return
	}

	h.Metrics.enrollCompleted.Inc()
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{
		Message: "Usuario " + u.Name + " registrado correctamente",
	})
}
