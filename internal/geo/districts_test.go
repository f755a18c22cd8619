package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты таблицы центроидов.
//
// Покрытие:
//  - тотальность: любой вход даёт координату внутри страны;
//  - точное совпадение без регистра и с краевыми пробелами;
//  - поиск по подстроке в обе стороны, первый в порядке таблицы;
//  - фолбэк по умолчанию — столица.

var dhakaCentroid = Point{23.8103, 90.4125}

func TestDistrictCentroid_ExactMatch(t *testing.T) {
	t.Parallel()

	require.Equal(t, Point{24.8949, 91.8687}, DistrictCentroid("Sylhet"))
	require.Equal(t, Point{24.8949, 91.8687}, DistrictCentroid("sylhet"))
	require.Equal(t, Point{24.8949, 91.8687}, DistrictCentroid("  SYLHET  "))
}

func TestDistrictCentroid_SubstringMatch_InputContainsKey(t *testing.T) {
	t.Parallel()

	// Вход длиннее ключа таблицы.
	require.Equal(t, Point{22.3569, 91.7832}, DistrictCentroid("chattogram district"))
}

func TestDistrictCentroid_SubstringMatch_KeyContainsInput(t *testing.T) {
	t.Parallel()

	// Вход — префикс ключа таблицы: "khagrach" входит в "khagrachhari".
	require.Equal(t, Point{23.1193, 91.9847}, DistrictCentroid("khagrach"))
}

func TestDistrictCentroid_SubstringTieBreak_TableOrderWins(t *testing.T) {
	t.Parallel()

	// "rang" входит и в "chittagong"? нет; входит в "rangamati" и "rangpur".
	// В таблице rangamati объявлен раньше — он и побеждает.
	require.Equal(t, Point{22.7324, 92.2985}, DistrictCentroid("rang"))
}

func TestDistrictCentroid_LegacySpellings(t *testing.T) {
	t.Parallel()

	require.Equal(t, DistrictCentroid("chattogram"), DistrictCentroid("chittagong"))
	require.Equal(t, DistrictCentroid("barishal"), DistrictCentroid("barisal"))
	require.Equal(t, DistrictCentroid("jashore"), DistrictCentroid("jessore"))
}

func TestDistrictCentroid_UnknownFallsBackToDhaka(t *testing.T) {
	t.Parallel()

	require.Equal(t, dhakaCentroid, DistrictCentroid("atlantis"))
	require.Equal(t, dhakaCentroid, DistrictCentroid(""))
	require.Equal(t, dhakaCentroid, DistrictCentroid("   "))
}

func TestDistrictCentroid_Total_AllEntriesInsideBounds(t *testing.T) {
	t.Parallel()

	for _, e := range districtCentroids {
		require.True(t, InBangladesh(e.point.Lat, e.point.Lng),
			"centroid %q must lie inside the national box", e.name)
	}
}
