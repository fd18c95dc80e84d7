package config

import "encoding/base64"

// secretMask is the per-rune XOR key of the obfuscation codec. This is
// casual obfuscation to keep guess strings out of plain-sight config files,
// not cryptography.
const secretMask = 18

// EncodeSecret obfuscates s for storage in user_guess_string_encoded.
func EncodeSecret(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = r ^ secretMask
	}
	return base64.StdEncoding.EncodeToString([]byte(string(runes)))
}

// DecodeSecret reverses EncodeSecret.
func DecodeSecret(s string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	runes := []rune(string(data))
	for i, r := range runes {
		runes[i] = r ^ secretMask
	}
	return string(runes), nil
}
