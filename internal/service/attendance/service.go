package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/akachaad/office-pulse-2026/internal/pkg/calendar"
)

type AttendanceServiceImpl struct {
	txm            attendance.TxManager
	attendanceRepo attendance.AttendanceRepository
	patternRepo    recurrent.PatternRepository
	personRepo     person.PersonRepository
	locks          *keyLock
}

func NewAttendanceService(
	txm attendance.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	patternRepo recurrent.PatternRepository,
	personRepo person.PersonRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		txm:            txm,
		attendanceRepo: attendanceRepo,
		patternRepo:    patternRepo,
		personRepo:     personRepo,
		locks:          newKeyLock(),
	}
}

func dayKey(personID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", personID, date.Format("2006-01-02"))
}

func validDate(date time.Time) bool {
	return date.Year() >= 2000 && date.Year() <= 2200
}

// ResolveDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ResolveDay(ctx context.Context, personID int64, date time.Time) (attendance.EffectiveDay, error) {
	date = calendar.Midnight(date)
	if !validDate(date) {
		return attendance.EffectiveDay{}, attendance.ErrInvalidDate
	}

	if _, err := s.personRepo.GetByID(ctx, personID); err != nil {
		return attendance.EffectiveDay{}, err
	}

	records, err := s.attendanceRepo.ListByPersonAndDate(ctx, personID, date)
	if err != nil {
		return attendance.EffectiveDay{}, err
	}

	patterns, err := s.patternRepo.List(ctx, &personID)
	if err != nil {
		return attendance.EffectiveDay{}, err
	}

	return Resolve(SlotsFromRecords(records), PatternForWeekday(patterns, date), date), nil
}

// ResolveMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ResolveMonth(ctx context.Context, personID int64, month time.Month, year int) (map[string]attendance.EffectiveDay, error) {
	if _, err := s.personRepo.GetByID(ctx, personID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, &personID, month, year)
	if err != nil {
		return nil, err
	}

	patterns, err := s.patternRepo.List(ctx, &personID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]attendance.Record)
	for _, rec := range records {
		key := rec.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], rec)
	}

	days := make(map[string]attendance.EffectiveDay)
	for dayNum := 1; dayNum <= calendar.DaysInMonth(month, year); dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		key := date.Format("2006-01-02")

		day := Resolve(SlotsFromRecords(byDate[key]), PatternForWeekday(patterns, date), date)
		if !day.Empty() {
			days[key] = day
		}
	}

	return days, nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, personID *int64, month time.Month, year int) ([]attendance.Record, error) {
	if personID != nil {
		if _, err := s.personRepo.GetByID(ctx, *personID); err != nil {
			return nil, err
		}
	}
	return s.attendanceRepo.ListByMonth(ctx, personID, month, year)
}

// SetPeriod implements attendance.AttendanceService. The clears, the
// write and the merge collapse run under one transaction serialized per
// (person, date), so a failure partway never leaves a day holding both
// representations.
func (s *AttendanceServiceImpl) SetPeriod(ctx context.Context, personID int64, date time.Time, period attendance.Period, status attendance.Status) (attendance.EffectiveDay, error) {
	date = calendar.Midnight(date)

	if !validDate(date) {
		return attendance.EffectiveDay{}, attendance.ErrInvalidDate
	}
	if !period.Valid() {
		return attendance.EffectiveDay{}, attendance.ErrInvalidPeriod
	}
	if status != attendance.StatusNone && !status.Valid() {
		return attendance.EffectiveDay{}, attendance.ErrInvalidStatus
	}

	if _, err := s.personRepo.GetByID(ctx, personID); err != nil {
		return attendance.EffectiveDay{}, err
	}

	if calendar.IsNonWorkingDay(date) {
		return attendance.EffectiveDay{}, attendance.ErrNonWorkingDay
	}

	unlock := s.locks.Lock(dayKey(personID, date))
	defer unlock()

	var after attendance.Slots
	err := s.txm.WithinTransaction(ctx, func(txCtx context.Context) error {
		records, err := s.attendanceRepo.ListByPersonAndDate(txCtx, personID, date)
		if err != nil {
			return err
		}

		before := SlotsFromRecords(records)
		after = ApplyWrite(before, period, status)

		for _, op := range DiffSlots(before, after) {
			if op.Delete {
				if err := s.attendanceRepo.Delete(txCtx, personID, date, op.Period); err != nil {
					return err
				}
				continue
			}
			if _, err := s.attendanceRepo.Upsert(txCtx, personID, date, op.Period, op.Status); err != nil {
				return err
			}
		}

		// Re-read before committing: the day must never end up with a
		// full-day record alongside a half-day record.
		records, err = s.attendanceRepo.ListByPersonAndDate(txCtx, personID, date)
		if err != nil {
			return err
		}
		check := SlotsFromRecords(records)
		if check.FullDay != attendance.StatusNone && (check.Morning != attendance.StatusNone || check.Afternoon != attendance.StatusNone) {
			return attendance.ErrConflictRecovery
		}

		return nil
	})
	if err != nil {
		return attendance.EffectiveDay{}, fmt.Errorf("set period: %w", err)
	}

	patterns, err := s.patternRepo.List(ctx, &personID)
	if err != nil {
		return attendance.EffectiveDay{}, err
	}

	return Resolve(after, PatternForWeekday(patterns, date), date), nil
}

// Advance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Advance(ctx context.Context, personID int64, date time.Time, period attendance.Period, cycle attendance.Cycle) (attendance.EffectiveDay, error) {
	if len(cycle) == 0 {
		return attendance.EffectiveDay{}, attendance.ErrInvalidCycle
	}

	day, err := s.ResolveDay(ctx, personID, date)
	if err != nil {
		return attendance.EffectiveDay{}, err
	}

	var current attendance.Status
	switch period {
	case attendance.PeriodMorning:
		current = day.Morning
	case attendance.PeriodAfternoon:
		current = day.Afternoon
	case attendance.PeriodFullDay:
		current = day.FullDay
	default:
		return attendance.EffectiveDay{}, attendance.ErrInvalidPeriod
	}

	return s.SetPeriod(ctx, personID, date, period, cycle.Next(current))
}

// MarkMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkMonth(ctx context.Context, personID int64, month time.Month, year int, status attendance.Status) (attendance.BulkResult, error) {
	return s.bulkApply(ctx, personID, month, year, status, nil)
}

// MarkWeekday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkWeekday(ctx context.Context, personID int64, month time.Month, year int, weekday int, status attendance.Status) (attendance.BulkResult, error) {
	return s.bulkApply(ctx, personID, month, year, status, &weekday)
}

// bulkApply writes status as full_day on each working day of the month
// (optionally restricted to one weekday), sequentially per date so the
// merge check of one write never races the next. Failures are collected,
// not fatal.
func (s *AttendanceServiceImpl) bulkApply(ctx context.Context, personID int64, month time.Month, year int, status attendance.Status, weekday *int) (attendance.BulkResult, error) {
	if !status.Valid() {
		return attendance.BulkResult{}, attendance.ErrInvalidStatus
	}

	if _, err := s.personRepo.GetByID(ctx, personID); err != nil {
		return attendance.BulkResult{}, err
	}

	result := attendance.BulkResult{}
	for _, dayNum := range calendar.WorkingDays(month, year) {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		if weekday != nil && int(date.Weekday()) != *weekday {
			continue
		}

		if _, err := s.SetPeriod(ctx, personID, date, attendance.PeriodFullDay, status); err != nil {
			result.Failures = append(result.Failures, attendance.BulkFailure{
				Date:  date.Format("2006-01-02"),
				Error: err.Error(),
			})
			continue
		}
		result.Applied = append(result.Applied, date.Format("2006-01-02"))
	}

	return result, nil
}
