package core

// Activity field names tracked by the default schema. Exported so the
// CLI can refer to the free-text fields without string literals.
const (
	FieldMemorization = "Memorization"
	FieldRevision     = "Revision"
)

// DefaultActivities returns the stock prayer-and-recitation schema.
// The order matches the columns of existing daily_progress.csv files
// and must not be reordered.
func DefaultActivities() Schema {
	return MustSchema(
		Numeric("Tahajjud", 2),
		Numeric("Isha_3_Witr", 3),
		Numeric("Surah_Sajdah", 1),
		Numeric("Surah_Mulk", 1),
		Numeric("Fajr_2_Sunnath", 2),
		Numeric("Fajr_2_Faraz", 2),
		Numeric("Surah_Yaseen", 1),
		Numeric("Ishraq", 2),
		Numeric("Chasht", 2),
		Numeric("Zohar_4_Sunnath", 4),
		Numeric("Zohar_4_Faraz", 4),
		Numeric("Zohar_2_Sunnath", 2),
		Numeric("Zohar_2_Nafil", 2),
		Numeric("Asar_4_Sunnath", 4),
		Numeric("Asar_4_Faraz", 4),
		Numeric("Maghrib_3_Faraz", 3),
		Numeric("Maghrib_2_Sunnath", 2),
		Numeric("Maghrib_2_Nafil", 2),
		Numeric("Surah_Rahman", 1),
		Numeric("Surah_Waqiah", 1),
		Numeric("Isha_4_Faraz", 4),
		Numeric("Isha_2_Sunnath", 2),
		FreeText(FieldMemorization),
		FreeText(FieldRevision),
	)
}
