// internal/delivery/telegram/formatters/utils.go
package formatters

import "strings"

// groupThousands расставляет разделители тысяч в целой части
// десятичной строки вида "-1234567.89"
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	return sign + b.String() + fracPart
}

// AddressDisplay сокращает адрес трейдера для заголовков сообщений.
// EVM-адреса режутся 8+6, bech32 - 10+6; короткие адреса не трогаем.
func AddressDisplay(address string) string {
	if strings.HasPrefix(address, "0x") {
		if len(address) <= 14 {
			return address
		}
		return address[:8] + "..." + address[len(address)-6:]
	}

	if len(address) <= 16 {
		return address
	}
	return address[:10] + "..." + address[len(address)-6:]
}
