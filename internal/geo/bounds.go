package geo

// Национальная рамка Бангладеш. Значения исторические — менять нельзя,
// от них зависит совместимость с уже сохранёнными координатами.
const (
	minLat = 20.5
	maxLat = 26.7
	minLng = 88.0
	maxLng = 92.7
)

// InBangladesh сообщает, лежит ли точка внутри национальной рамки
// (границы включительно).
func InBangladesh(lat, lng float64) bool {
	return lat >= minLat && lat <= maxLat && lng >= minLng && lng <= maxLng
}
