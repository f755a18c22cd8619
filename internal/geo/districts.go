package geo

import "strings"

// districtEntry — элемент таблицы центроидов.
type districtEntry struct {
	name  string
	point Point
}

// districtCentroids — упорядоченная таблица «район → центроид».
// Порядок объявления — часть контракта: при поиске по подстроке
// побеждает первое совпадение. Первый элемент (Dhaka) — фолбэк по
// умолчанию, когда район не распознан. Имена хранятся в нижнем регистре.
var districtCentroids = []districtEntry{
	// Dhaka division.
	{"dhaka", Point{23.8103, 90.4125}},
	{"faridpur", Point{23.6070, 89.8429}},
	{"gazipur", Point{23.9999, 90.4203}},
	{"gopalganj", Point{23.0050, 89.8266}},
	{"kishoreganj", Point{24.4449, 90.7766}},
	{"madaripur", Point{23.1641, 90.1897}},
	{"manikganj", Point{23.8617, 90.0003}},
	{"munshiganj", Point{23.5422, 90.5305}},
	{"narayanganj", Point{23.6238, 90.5000}},
	{"narsingdi", Point{23.9322, 90.7151}},
	{"rajbari", Point{23.7574, 89.6445}},
	{"shariatpur", Point{23.2423, 90.4348}},
	{"tangail", Point{24.2513, 89.9167}},
	// Chattogram division.
	{"chattogram", Point{22.3569, 91.7832}},
	{"chittagong", Point{22.3569, 91.7832}},
	{"bandarban", Point{22.1953, 92.2184}},
	{"brahmanbaria", Point{23.9571, 91.1119}},
	{"chandpur", Point{23.2333, 90.6712}},
	{"cumilla", Point{23.4607, 91.1809}},
	{"comilla", Point{23.4607, 91.1809}},
	{"cox's bazar", Point{21.4272, 92.0058}},
	{"feni", Point{23.0159, 91.3976}},
	{"khagrachhari", Point{23.1193, 91.9847}},
	{"lakshmipur", Point{22.9424, 90.8412}},
	{"noakhali", Point{22.8696, 91.0995}},
	{"rangamati", Point{22.7324, 92.2985}},
	// Khulna division.
	{"khulna", Point{22.8456, 89.5403}},
	{"bagerhat", Point{22.6516, 89.7859}},
	{"chuadanga", Point{23.6402, 88.8418}},
	{"jashore", Point{23.1664, 89.2081}},
	{"jessore", Point{23.1664, 89.2081}},
	{"jhenaidah", Point{23.5450, 89.1539}},
	{"kushtia", Point{23.9013, 89.1205}},
	{"magura", Point{23.4873, 89.4199}},
	{"meherpur", Point{23.7622, 88.6318}},
	{"narail", Point{23.1163, 89.5840}},
	{"satkhira", Point{22.7185, 89.0705}},
	// Rajshahi division.
	{"rajshahi", Point{24.3745, 88.6042}},
	{"bogura", Point{24.8465, 89.3773}},
	{"bogra", Point{24.8465, 89.3773}},
	{"joypurhat", Point{25.0968, 89.0227}},
	{"naogaon", Point{24.7936, 88.9318}},
	{"natore", Point{24.4206, 89.0003}},
	{"chapainawabganj", Point{24.5965, 88.2776}},
	{"pabna", Point{24.0064, 89.2372}},
	{"sirajganj", Point{24.4534, 89.7007}},
	// Rangpur division.
	{"rangpur", Point{25.7439, 89.2752}},
	{"dinajpur", Point{25.6217, 88.6354}},
	{"gaibandha", Point{25.3297, 89.5430}},
	{"kurigram", Point{25.8054, 89.6362}},
	{"lalmonirhat", Point{25.9923, 89.2847}},
	{"nilphamari", Point{25.9317, 88.8560}},
	{"panchagarh", Point{26.3411, 88.5542}},
	{"thakurgaon", Point{26.0337, 88.4616}},
	// Mymensingh division.
	{"mymensingh", Point{24.7471, 90.4203}},
	{"jamalpur", Point{24.9375, 89.9373}},
	{"netrokona", Point{24.8700, 90.7279}},
	{"sherpur", Point{25.0204, 90.0153}},
	// Sylhet division.
	{"sylhet", Point{24.8949, 91.8687}},
	{"habiganj", Point{24.3745, 91.4155}},
	{"moulvibazar", Point{24.4829, 91.7774}},
	{"sunamganj", Point{25.0658, 91.3950}},
	// Barishal division.
	{"barishal", Point{22.7010, 90.3535}},
	{"barisal", Point{22.7010, 90.3535}},
	{"barguna", Point{22.0953, 90.1121}},
	{"bhola", Point{22.6859, 90.6482}},
	{"jhalokathi", Point{22.6406, 90.1987}},
	{"patuakhali", Point{22.3596, 90.3298}},
	{"pirojpur", Point{22.5791, 89.9759}},
}

// DistrictCentroid возвращает центроид района. Функция тотальна:
// неизвестный, пустой или мусорный вход даёт центроид столицы.
//
// Порядок поиска:
//  1. точное совпадение (без регистра, края обрезаны);
//  2. первое вхождение по подстроке в любую сторону, в порядке таблицы;
//  3. элемент по умолчанию (первый в таблице).
func DistrictCentroid(district string) Point {
	q := strings.ToLower(strings.TrimSpace(district))

	if q != "" {
		for _, e := range districtCentroids {
			if e.name == q {
				return e.point
			}
		}

		for _, e := range districtCentroids {
			if strings.Contains(q, e.name) || strings.Contains(e.name, q) {
				return e.point
			}
		}
	}

	return districtCentroids[0].point
}
