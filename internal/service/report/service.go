package report

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/akachaad/office-pulse-2026/internal/domain/report"
	"github.com/akachaad/office-pulse-2026/internal/pkg/calendar"
	attendancesvc "github.com/akachaad/office-pulse-2026/internal/service/attendance"
)

// Options tunes how aggregation counts statuses. Homeworking counts
// toward the presence rate only when the deployment opts in.
type Options struct {
	CountHomeworkingAsPresent bool
}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	patternRepo    recurrent.PatternRepository
	personRepo     person.PersonRepository
	opts           Options
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	patternRepo recurrent.PatternRepository,
	personRepo person.PersonRepository,
	opts Options,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		patternRepo:    patternRepo,
		personRepo:     personRepo,
		opts:           opts,
	}
}

// monthData is everything one aggregation pass needs, fetched in three
// queries regardless of headcount.
type monthData struct {
	recordsByPerson  map[int64][]attendance.Record
	patternsByPerson map[int64][]recurrent.Pattern
}

func (s *ReportServiceImpl) loadMonth(ctx context.Context, month time.Month, year int) (monthData, error) {
	records, err := s.attendanceRepo.ListByMonth(ctx, nil, month, year)
	if err != nil {
		return monthData{}, err
	}

	patterns, err := s.patternRepo.List(ctx, nil)
	if err != nil {
		return monthData{}, err
	}

	data := monthData{
		recordsByPerson:  make(map[int64][]attendance.Record),
		patternsByPerson: make(map[int64][]recurrent.Pattern),
	}
	for _, rec := range records {
		data.recordsByPerson[rec.PersonID] = append(data.recordsByPerson[rec.PersonID], rec)
	}
	for _, pat := range patterns {
		data.patternsByPerson[pat.PersonID] = append(data.patternsByPerson[pat.PersonID], pat)
	}
	return data, nil
}

// aggregate walks every day of the month through the same resolution the
// calendar views use, so recurring patterns contribute to the buckets
// exactly as they display.
func (s *ReportServiceImpl) aggregate(p person.Person, data monthData, month time.Month, year int) report.Stats {
	byDate := make(map[string][]attendance.Record)
	for _, rec := range data.recordsByPerson[p.ID] {
		byDate[rec.Date.Format("2006-01-02")] = append(byDate[rec.Date.Format("2006-01-02")], rec)
	}
	patterns := data.patternsByPerson[p.ID]

	buckets := make(map[attendance.Status]float64)
	for dayNum := 1; dayNum <= calendar.DaysInMonth(month, year); dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		key := date.Format("2006-01-02")

		day := attendancesvc.Resolve(
			attendancesvc.SlotsFromRecords(byDate[key]),
			attendancesvc.PatternForWeekday(patterns, date),
			date,
		)

		if day.FullDay != attendance.StatusNone {
			buckets[day.FullDay] += 1.0
			continue
		}
		if day.Morning != attendance.StatusNone {
			buckets[day.Morning] += 0.5
		}
		if day.Afternoon != attendance.StatusNone {
			buckets[day.Afternoon] += 0.5
		}
	}

	stats := report.Stats{
		PersonID:    p.ID,
		Trigramme:   p.Trigramme,
		Present:     buckets[attendance.StatusPresent],
		Sickness:    buckets[attendance.StatusSickness],
		Holidays:    buckets[attendance.StatusHolidays],
		Training:    buckets[attendance.StatusTraining],
		Homeworking: buckets[attendance.StatusHomeworking],
	}
	stats.TotalCounted = stats.Present + stats.Sickness + stats.Holidays + stats.Training + stats.Homeworking
	stats.Rate = s.rate(stats.Present, stats.Homeworking, stats.TotalCounted)
	return stats
}

func (s *ReportServiceImpl) rate(present, homeworking, total float64) int {
	if total == 0 {
		return 0
	}
	counted := present
	if s.opts.CountHomeworkingAsPresent {
		counted += homeworking
	}
	return int(math.Round(100 * counted / total))
}

// PersonStats implements report.ReportService.
func (s *ReportServiceImpl) PersonStats(ctx context.Context, personID int64, month time.Month, year int) (report.Stats, error) {
	p, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		return report.Stats{}, err
	}

	data, err := s.loadMonth(ctx, month, year)
	if err != nil {
		return report.Stats{}, err
	}

	return s.aggregate(p, data, month, year), nil
}

// AllStats implements report.ReportService.
func (s *ReportServiceImpl) AllStats(ctx context.Context, month time.Month, year int) ([]report.Stats, error) {
	people, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.loadMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}

	stats := make([]report.Stats, 0, len(people))
	for _, p := range people {
		stats = append(stats, s.aggregate(p, data, month, year))
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Trigramme < stats[j].Trigramme })
	return stats, nil
}

// TeamStats implements report.ReportService.
func (s *ReportServiceImpl) TeamStats(ctx context.Context, team string, month time.Month, year int) (report.TeamStats, error) {
	people, err := s.personRepo.List(ctx)
	if err != nil {
		return report.TeamStats{}, err
	}

	data, err := s.loadMonth(ctx, month, year)
	if err != nil {
		return report.TeamStats{}, err
	}

	out := report.TeamStats{Team: team}
	var homeworking float64
	for _, p := range people {
		if p.Team != team {
			continue
		}
		out.Members++
		stats := s.aggregate(p, data, month, year)
		out.Present += stats.Present
		out.TotalCounted += stats.TotalCounted
		homeworking += stats.Homeworking
	}
	out.Rate = s.rate(out.Present, homeworking, out.TotalCounted)
	return out, nil
}

// MonthWarnings implements report.ReportService. Both checks read
// explicit records only: a recurring pattern states intent, the warnings
// police what was actually recorded.
func (s *ReportServiceImpl) MonthWarnings(ctx context.Context, month time.Month, year int, capacityLimit int) (report.Warnings, error) {
	records, err := s.attendanceRepo.ListByMonth(ctx, nil, month, year)
	if err != nil {
		return report.Warnings{}, err
	}

	people, err := s.personRepo.List(ctx)
	if err != nil {
		return report.Warnings{}, err
	}
	trigrammes := make(map[int64]string, len(people))
	for _, p := range people {
		trigrammes[p.ID] = p.Trigramme
	}

	return report.Warnings{
		Homeworking: homeworkingWarnings(records, trigrammes),
		Capacity:    capacityWarnings(records, capacityLimit),
	}, nil
}

const homeworkingWeeklyCap = 3

// homeworkingWarnings flags people homeworking on more than three
// distinct dates in one Monday-start week. A half day of homeworking
// still occupies the date.
func homeworkingWarnings(records []attendance.Record, trigrammes map[int64]string) []report.HomeworkingWarning {
	type weekKey struct {
		personID  int64
		weekStart string
	}

	dates := make(map[weekKey]map[string]struct{})
	for _, rec := range records {
		if rec.Status != attendance.StatusHomeworking {
			continue
		}
		key := weekKey{
			personID:  rec.PersonID,
			weekStart: calendar.WeekStart(rec.Date).Format("2006-01-02"),
		}
		if dates[key] == nil {
			dates[key] = make(map[string]struct{})
		}
		dates[key][rec.Date.Format("2006-01-02")] = struct{}{}
	}

	var warnings []report.HomeworkingWarning
	for key, set := range dates {
		if len(set) <= homeworkingWeeklyCap {
			continue
		}
		warnings = append(warnings, report.HomeworkingWarning{
			PersonID:        key.personID,
			Trigramme:       trigrammes[key.personID],
			WeekStart:       key.weekStart,
			HomeworkingDays: len(set),
		})
	}

	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].HomeworkingDays != warnings[j].HomeworkingDays {
			return warnings[i].HomeworkingDays > warnings[j].HomeworkingDays
		}
		return warnings[i].Trigramme < warnings[j].Trigramme
	})
	return warnings
}

// capacityWarnings flags dates where full-day present records exceed the
// office capacity limit.
func capacityWarnings(records []attendance.Record, limit int) []report.CapacityWarning {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Period != attendance.PeriodFullDay || rec.Status != attendance.StatusPresent {
			continue
		}
		counts[rec.Date.Format("2006-01-02")]++
	}

	var warnings []report.CapacityWarning
	for date, count := range counts {
		if count <= limit {
			continue
		}
		warnings = append(warnings, report.CapacityWarning{
			Date:          date,
			PresentCount:  count,
			CapacityLimit: limit,
		})
	}

	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].PresentCount != warnings[j].PresentCount {
			return warnings[i].PresentCount > warnings[j].PresentCount
		}
		return warnings[i].Date < warnings[j].Date
	})
	return warnings
}
