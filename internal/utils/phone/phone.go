// Package phone проверяет номера мобильных кошельков Бангладеш.
package phone

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidNumber возвращается для номера, не похожего на мобильный номер Бангладеш
var ErrInvalidNumber = errors.New("invalid wallet number")

// 01[3-9] и еще 8 цифр, с необязательным кодом страны
var walletPattern = regexp.MustCompile(`^(?:\+?88)?(01[3-9]\d{8})$`)

// NormalizeWallet проверяет номер bKash/Nagad и возвращает его в локальном виде 01XXXXXXXXX.
// Пробелы и дефисы игнорируются.
func NormalizeWallet(number string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(number))

	m := walletPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return "", ErrInvalidNumber
	}

	return m[1], nil
}
