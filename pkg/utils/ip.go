package utils

import (
	"net/http"
	"strings"
)

// UnknownIP é usado quando a requisição não traz nenhum cabeçalho de IP
const UnknownIP = "unknown"

// ClientIP retorna o IP do visitante a partir dos cabeçalhos do proxy.
// Usa o primeiro valor de X-Forwarded-For, depois X-Real-IP.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	return UnknownIP
}
