package geo

import "strings"

// countrySuffix добавляется к каждому запросу безусловно.
const countrySuffix = "Bangladesh"

// BuildQuery собирает строку запроса к геокодеру: непустые поля адреса
// в фиксированном порядке, через ", ", со страной в конце.
// Пустые поля пропускаются как есть, без обрезки пробелов.
func BuildQuery(addr Address) string {
	parts := make([]string, 0, 7)

	for _, field := range []string{
		addr.AddressLine1,
		addr.AddressLine2,
		addr.Upazila,
		addr.CityTown,
		addr.District,
		addr.PostalCode,
	} {
		if field != "" {
			parts = append(parts, field)
		}
	}

	parts = append(parts, countrySuffix)

	return strings.Join(parts, ", ")
}
