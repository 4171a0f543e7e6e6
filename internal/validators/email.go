package validators

import (
	"net"
	"strings"
)

// NormalizeEmail apara espaços e baixa a caixa. É a forma gravada no
// cadastro e usada pelos lembretes.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid confere a forma local@dominio e se o domínio
// resolve (MX ou A). A parte local fica a cargo do provedor.
func IsEmailDomainValid(email string) bool {
	email = NormalizeEmail(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(domain, " \t") || !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
