// redact маскирует чувствительные данные перед записью в логи.
package redact

// Username маскирует имя пользователя: оставляет первые две руны и "***".
// Имена длиной до двух рун заменяются на "***" целиком.
//
// Примеры:
//
//	"alice" -> "al***"
//	"bo"    -> "***"
//	""      -> "***"
func Username(s string) string {
	r := []rune(s)
	if len(r) <= 2 {
		return "***"
	}

	return string(r[:2]) + "***"
}

// Token возвращает литерал-заглушку для токена в логах.
func Token() string { return "[REDACTED_TOKEN]" }

// Password возвращает литерал-заглушку для пароля в логах.
func Password() string { return "[REDACTED_PASSWORD]" }
