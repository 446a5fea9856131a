package order

import "strings"

// Required delivery fields, in the order they are reported when missing.
var requiredFields = []string{"nama", "hp", "alamat", "kota"}

// ParseCustomerInfo parses newline-delimited "key: value" lines. Keys are
// case-insensitive; values are trimmed and may contain colons (the split
// happens on the first colon only). The second return value lists every
// required field that is absent or empty.
func ParseCustomerInfo(raw string) (CustomerInfo, []string) {
	fields := make(map[string]string)

	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		fields[key] = value
	}

	var missing []string
	for _, f := range requiredFields {
		if fields[f] == "" {
			missing = append(missing, f)
		}
	}

	info := CustomerInfo{
		Name:       fields["nama"],
		Phone:      fields["hp"],
		Address:    fields["alamat"],
		City:       fields["kota"],
		PostalCode: fields["kodepos"],
	}
	return info, missing
}
