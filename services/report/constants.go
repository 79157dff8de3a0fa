package report

// Unspecified is the fallback sentinel substituted when a display attribute
// cannot be resolved from a record.
const Unspecified = "غير محدد"

// dayTranslations is the fixed localization table for weekday names.
var dayTranslations = map[string]string{
	"Saturday":  "السبت",
	"Sunday":    "الأحد",
	"Monday":    "الاثنين",
	"Tuesday":   "الثلاثاء",
	"Wednesday": "الأربعاء",
	"Thursday":  "الخميس",
	"Friday":    "الجمعة",
}

// musicRoomKeywords match the music room across the spellings seen in stored
// data. Matching is case-insensitive substring containment.
var musicRoomKeywords = []string{
	"غرفة الموسيقي",
	"غرفة الموسيقى",
	"Music Room",
	"music room",
	"الموسيقي",
	"الموسيقى",
}

// Evening window for the music-room report: start times in [18:00, 22:00).
const (
	eveningStartHour = 18
	eveningEndHour   = 22
)
