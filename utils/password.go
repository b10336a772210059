// utils/password.go
package utils

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Baseline deny-list; a larger list can be supplied via COMMON_PASSWORDS_FILE
// (one password per line).
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"12345678":   {},
	"123456789":  {},
	"qwerty123":  {},
	"letmein123": {},
	"iloveyou1":  {},
	"admin123":   {},
	"welcome1":   {},
	"abc12345":   {},
}

func passwordMinLength() int {
	if env := os.Getenv("PASSWORD_MIN_LENGTH"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}
	return 8
}

func isCommonPassword(password string) bool {
	lowered := strings.ToLower(password)
	if _, ok := commonPasswords[lowered]; ok {
		return true
	}
	path := os.Getenv("COMMON_PASSWORDS_FILE")
	if path == "" {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), password) {
			return true
		}
	}
	return false
}

// ValidatePassword applies the account password policy: minimum length
// (PASSWORD_MIN_LENGTH, default 8), not entirely numeric, and not a known
// common password.
func ValidatePassword(password string) error {
	min := passwordMinLength()
	if len(password) < min {
		return fmt.Errorf("password must be at least %d characters long", min)
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return fmt.Errorf("password cannot be entirely numeric")
	}
	if isCommonPassword(password) {
		return fmt.Errorf("password is too common")
	}
	return nil
}
