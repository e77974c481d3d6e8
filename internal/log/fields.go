package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldDate      = "date"
	FieldActivity  = "activity"
	FieldValue     = "value"
	FieldRowCount  = "row_count"
	FieldCommand   = "command"
	FieldDuration  = "duration_ms"
	FieldPhrase    = "phrase"
	FieldCount     = "count"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentDeeds   = "deeds"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentZikr    = "zikr"
	ComponentTermux  = "termux"
	ComponentTUI     = "tui"
)

// Standard operation names.
const (
	OpEnsureRow = "ensure_row"
	OpUpdate    = "update"
	OpRead      = "read"
	OpList      = "list"
	OpMigrate   = "migrate"
	OpExec      = "exec"
)
