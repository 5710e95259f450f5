package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldIntent     = "intent"
	FieldCategory   = "category"
	FieldExpenseID  = "expense_id"
	FieldAmount     = "amount_cents"
	FieldProvider   = "provider"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentAssistant = "assistant"
	ComponentAlerts    = "alerts"
	ComponentRateLimit = "rate_limit"
)
