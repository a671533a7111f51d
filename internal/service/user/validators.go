package user

import "strings"

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

const minPasswordLength = 6

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength
}
