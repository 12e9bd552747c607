package http

import (
	"errors"
	"net/http"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/service"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/httpx"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/slogx"
)

// AttendanceHandler covers check-ins and the history listing.
type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
	HistoryLimit      int
	Metrics           *Metrics
}

// HandleCheck handles GET /api/attendance
//
//	@Summary		Attendance check-in
//	@Description	Captures one sample and matches it against the enrolled templates. Polled periodically; an empty sensor window is a routine 400.
//	@Tags			Attendance
//	@Produce		json
//	@Success		200	{object}	AttendanceResponse
//	@Failure		400	{object}	ErrorResponse	"no finger or conversion failure"
//	@Failure		404	{object}	ErrorResponse	"fingerprint not enrolled"
//	@Router			/api/attendance [get].
func (h *AttendanceHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	res, err := h.AttendanceService.Check(ctx)
	if err != nil {
		switch {
		case errors.Is(err, sensor.ErrNoFinger):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "no_finger",
				Msg:   "Coloque el dedo en el sensor",
			})
		case errors.Is(err, sensor.ErrConvert):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "convert_error",
				Msg:   "No se pudo procesar la huella",
			})
		case errors.Is(err, service.ErrNotRecognized):
			h.Metrics.attendanceMisses.Inc()
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
				Error: "not_enrolled",
				Msg:   "Huella no reconocida",
			})
		default:
			log.Error("attendance check failed", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: "server_error",
				Msg:   "Error al registrar la asistencia",
			})
		}
		return
	}

	h.Metrics.attendanceMatches.Inc()
	httpx.WriteJSON(w, http.StatusOK, AttendanceResponse{
		ID:         res.ID,
		Nombre:     res.Name,
		Confidence: res.Confidence,
		Fecha:      res.Date,
		Hora:       res.Time,
		Tipo:       res.Kind,
	})
}

// HandleDatabase handles GET /api/database
//
//	@Summary		List recent attendance events
//	@Description	Returns the newest events first, bounded to protect the device's working memory.
//	@Tags			Attendance
//	@Produce		json
//	@Success		200	{array}	HistoryEntry
//	@Router			/api/database [get].
func (h *AttendanceHandler) HandleDatabase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.AttendanceService.History(ctx, h.HistoryLimit)
	if err != nil {
		log.Error("failed to read attendance history", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "server_error",
			Msg:   "No se pudo leer el historial",
		})
		return
	}

	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntry{
			ID:     e.ID,
			Nombre: e.Name,
			Fecha:  e.Date,
			Hora:   e.Time,
			Rol:    e.Role,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
