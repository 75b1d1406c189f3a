package prayertime

// PrayerTimes is one cached snapshot of the daily external lookup, keyed by
// calendar date. It is a cache, not a ledger: a stored row for today is
// returned verbatim no matter what the provider would say now.
type PrayerTimes struct {
	Date      string `gorm:"type:varchar(10);primaryKey" json:"date"` // "2006-01-02"
	HijriDate string `gorm:"type:varchar(100)" json:"hijri_date"`
	Fajr      string `gorm:"type:varchar(10)" json:"fajr"`
	Dhuhr     string `gorm:"type:varchar(10)" json:"dhuhr"`
	Asr       string `gorm:"type:varchar(10)" json:"asr"`
	Maghrib   string `gorm:"type:varchar(10)" json:"maghrib"`
	Isha      string `gorm:"type:varchar(10)" json:"isha"`
	Location  string `gorm:"type:varchar(100)" json:"location"`
}

func (PrayerTimes) TableName() string {
	return "prayer_times"
}
