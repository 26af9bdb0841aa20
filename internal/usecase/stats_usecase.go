package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/JRossell27/Job-tracker/internal/domain"
	"github.com/JRossell27/Job-tracker/pkg/apperror"
)

type statsUsecase struct {
	appRepo domain.ApplicationRepository
}

func NewStatsUsecase(appRepo domain.ApplicationRepository) domain.StatsUsecase {
	return &statsUsecase{appRepo: appRepo}
}

// Summary aggregates the user's current row set. Counting is by substring
// containment, so any status mentioning "Interview" counts as an interview.
func (uc *statsUsecase) Summary(ctx context.Context, username string) (*domain.Stats, error) {
	apps, err := uc.appRepo.GetAll(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s := &domain.Stats{Total: len(apps)}
	for _, app := range apps {
		if strings.Contains(app.Status, "Interview") {
			s.Interviews++
		}
		if strings.Contains(app.Status, "Offer") {
			s.Offers++
		}
		if strings.Contains(app.Status, "Rejected") {
			s.Rejections++
		}
		if strings.Contains(app.ResumeOptimized, "Yes") {
			s.ResumeOptimized++
		}
	}
	s.InterviewRate = rate(s.Interviews, s.Total)
	s.OfferRate = rate(s.Offers, s.Total)
	return s, nil
}

// Timeline counts applications per application date for the time-series
// chart, sorted ascending by date string.
func (uc *statsUsecase) Timeline(ctx context.Context, username string) ([]domain.DateCount, error) {
	apps, err := uc.appRepo.GetAll(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byDate := make(map[string]int)
	for _, app := range apps {
		if app.ApplicationDate != "" {
			byDate[app.ApplicationDate]++
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	counts := make([]domain.DateCount, 0, len(dates))
	for _, date := range dates {
		counts = append(counts, domain.DateCount{Date: date, Count: byDate[date]})
	}
	return counts, nil
}

// StatusCounts counts applications per exact status value for the bar chart.
// The selectable statuses come first in form order, then any stray values in
// sorted order.
func (uc *statsUsecase) StatusCounts(ctx context.Context, username string) ([]domain.StatusCount, error) {
	apps, err := uc.appRepo.GetAll(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byStatus := make(map[string]int)
	for _, app := range apps {
		if app.Status != "" {
			byStatus[app.Status]++
		}
	}

	counts := make([]domain.StatusCount, 0, len(domain.Statuses))
	for _, status := range domain.Statuses {
		counts = append(counts, domain.StatusCount{Status: status, Count: byStatus[status]})
		delete(byStatus, status)
	}

	stray := make([]string, 0, len(byStatus))
	for status := range byStatus {
		stray = append(stray, status)
	}
	sort.Strings(stray)
	for _, status := range stray {
		counts = append(counts, domain.StatusCount{Status: status, Count: byStatus[status]})
	}
	return counts, nil
}

// rate renders part/total as a percentage with one decimal place, or the
// literal "0%" when total is zero.
func rate(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}
