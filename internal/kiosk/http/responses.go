package http

// Wire types for the kiosk API. Field names are load-bearing: the
// deployed browser client renders them directly, so they stay exactly
// as shipped (Spanish keys included).

// ErrorResponse is the generic failure payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Msg   string `json:"msg,omitempty"`
}

// EnrollStepResponse reports enrollment progress to the polling client.
type EnrollStepResponse struct {
	Step int    `json:"step"`
	ID   int    `json:"id,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// DuplicateResponse rejects an enrollment whose sample already matches
// an enrolled template. Step -1 tells the client to restart.
type DuplicateResponse struct {
	Step   int    `json:"step"`
	Error  string `json:"error"`
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Msg    string `json:"msg"`
}

// RegisterRequest finalizes a confirmed enrollment.
type RegisterRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// MessageResponse acknowledges a mutation.
type MessageResponse struct {
	Message string `json:"message"`
	Nombre  string `json:"nombre,omitempty"`
}

// AttendanceResponse is one recognized check-in.
type AttendanceResponse struct {
	ID         int    `json:"id"`
	Nombre     string `json:"nombre"`
	Confidence int    `json:"confidence"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	Tipo       string `json:"tipo"`
}

// HistoryEntry is one row of the attendance log listing.
type HistoryEntry struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Fecha  string `json:"fecha"`
	Hora   string `json:"hora"`
	Rol    string `json:"rol"`
}

// UserResponse is one enrolled user.
type UserResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// EditUserRequest rewrites a user record in place.
type EditUserRequest struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// DeleteUserRequest removes a user and their template.
type DeleteUserRequest struct {
	ID int `json:"id"`
}

// NextIDResponse is the slot the next enrollment will take.
type NextIDResponse struct {
	NextID int `json:"nextId"`
}

// CheckNameRequest probes name availability.
type CheckNameRequest struct {
	Name string `json:"name"`
}

// CheckNameResponse answers a name probe.
type CheckNameResponse struct {
	Exists bool `json:"exists"`
}

// SystemStatusResponse is the hardware health snapshot.
type SystemStatusResponse struct {
	ESP32    bool   `json:"esp32"`
	Sensor   bool   `json:"sensor"`
	RTC      bool   `json:"rtc"`
	SD       bool   `json:"sd"`
	DateTime string `json:"datetime,omitempty"`
}
