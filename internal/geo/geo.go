// Package geo реализует преобразование структурированного адреса в
// координаты: нормализация запроса, внешний геокодер, контроль
// национальной рамки и фолбэк на центроид района.
package geo

// Accuracy — уровень доверия к полученной координате.
type Accuracy string

const (
	// AccuracyPrecise — провайдер уверен в точке (confidence >= 8).
	AccuracyPrecise Accuracy = "precise"
	// AccuracyApproximate — точка приблизительная (confidence 5..7).
	AccuracyApproximate Accuracy = "approximate"
	// AccuracyDistrict — точка взята из таблицы центроидов района
	// либо confidence < 5.
	AccuracyDistrict Accuracy = "district-level"
	// AccuracyUnknown — геокодирование не состоялось; координату
	// назначает вызывающая сторона.
	AccuracyUnknown Accuracy = "unknown"
)

// Address — входной адрес для геокодирования.
// Поля необязательны; District нужен для работы фолбэка.
type Address struct {
	AddressLine1 string
	AddressLine2 string
	Upazila      string
	CityTown     string
	District     string
	PostalCode   string
}

// Result — итог геокодирования.
// Query — нормализованная строка, реально отправленная провайдеру;
// Formatted — каноническая строка провайдера (или Query, если её нет).
type Result struct {
	Lat       float64
	Lng       float64
	Accuracy  Accuracy
	Query     string
	Formatted string
}

// Point — координата (широта/долгота, WGS84).
type Point struct {
	Lat float64
	Lng float64
}
