package redact

// Token маскирует значение токена в логах: сам секрет не логируется никогда.
func Token() string { return "[REDACTED_TOKEN]" }

// Hash укорачивает хэш токена до префикса, достаточного для корреляции.
func Hash(h string) string {
	if len(h) <= 8 {
		return h
	}

	return h[:8] + "..."
}
