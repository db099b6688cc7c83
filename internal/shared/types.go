package shared

// Task types processed by the worker
const (
	TypeExportSnapshot = "export:snapshot"
	TypeExportDocument = "export:document"
	TypeCleanupExports = "export:cleanup"
)

// Queue names (priority: high > default > low)
const (
	QueueExport      = "default"
	QueueMaintenance = "low"
)
