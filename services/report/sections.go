package report

import (
	"strconv"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
	"github.com/aymanashrafmounir/SaintMark-BookingSystem/render"
)

// Report and table titles. Cells are laid out right to left, so the provider
// column leads each row.
const (
	TitleFull  = "تنظيم الخدمه بمبني الخدمات"
	TitleMusic = "مواعيد غرفة الموسيقي (6 مساءً - 10 مساءً)"

	titleRecurring     = "المواعيد الثابتة (الأسبوعية)"
	titleOneTime       = "المواعيد لمرة واحدة"
	titleCrossLocation = "الحجوزات المتطابقة (متعددة الأماكن)"
)

var (
	recurringHeaders     = []string{"الخادم المسؤول", "الخدمة", "الغرفة", "اليوم", "عدد الحجوزات", "الوقت", "التاريخ"}
	oneTimeHeaders       = []string{"الخادم المسؤول", "الخدمة", "الغرفة", "الوقت", "التاريخ"}
	crossLocationHeaders = []string{"الأماكن", "مقدم الخدمة", "الخدمة", "اليوم", "التاريخ", "الوقت", "عدد الحجوزات"}
)

// Sections maps a classified report to the ordered table sections the
// renderer consumes. Empty tables are omitted.
func Sections(rep *models.Report) []render.TableSection {
	var sections []render.TableSection

	if len(rep.Recurring) > 0 {
		rows := make([][]string, 0, len(rep.Recurring))
		for _, r := range rep.Recurring {
			rows = append(rows, []string{
				r.Provider, r.Service, r.Room, r.Day,
				strconv.Itoa(r.Count), r.Time, r.DateRange,
			})
		}
		sections = append(sections, render.TableSection{
			Title:   titleRecurring,
			Headers: recurringHeaders,
			Rows:    rows,
		})
	}

	if len(rep.OneTime) > 0 {
		rows := make([][]string, 0, len(rep.OneTime))
		for _, r := range rep.OneTime {
			rows = append(rows, []string{r.Provider, r.Service, r.Room, r.Time, r.Date})
		}
		sections = append(sections, render.TableSection{
			Title:   titleOneTime,
			Headers: oneTimeHeaders,
			Rows:    rows,
		})
	}

	if len(rep.CrossLocation) > 0 {
		rows := make([][]string, 0, len(rep.CrossLocation))
		for _, r := range rep.CrossLocation {
			rows = append(rows, []string{
				r.Rooms, r.Provider, r.Service, r.Day,
				r.DateRange, r.Time, strconv.Itoa(r.Count),
			})
		}
		sections = append(sections, render.TableSection{
			Title:   titleCrossLocation,
			Headers: crossLocationHeaders,
			Rows:    rows,
		})
	}

	return sections
}
