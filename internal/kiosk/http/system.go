package http

import (
	"net/http"
	"time"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/service"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/httpx"
)

// SystemHandler exposes the hardware health snapshot.
type SystemHandler struct {
	StatusService *service.StatusService
}

// HandleStatus handles GET /api/system-status
//
//	@Summary		Hardware subsystem health
//	@Description	Reports reachability of the fingerprint sensor, the RTC and the storage medium. datetime is present only when the RTC is valid.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	SystemStatusResponse
//	@Router			/api/system-status [get].
func (h *SystemHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	st := h.StatusService.Check(r.Context())
	httpx.WriteJSON(w, http.StatusOK, SystemStatusResponse{
		ESP32:    st.Device,
		Sensor:   st.Sensor,
		RTC:      st.RTC,
		SD:       st.Storage,
		DateTime: st.DateTime,
	})
}

// HealthzHandler is the liveness probe: 200 whenever the control loop
// is servicing requests.
//
//	@Summary	Liveness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/healthz [get].
func HealthzHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"uptime":  time.Since(startTime).String(),
			"version": version,
		})
	}
}
