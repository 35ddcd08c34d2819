package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"election-monitor/internal/mockdata"
)

type mockAuditService struct {
	store *mockdata.Store
}

func (s *mockAuditService) List(_ context.Context, filter AuditFilter) ([]mockdata.AuditLog, error) {
	matched := make([]mockdata.AuditLog, 0)
	for _, entry := range s.store.AuditLogs() {
		if filter.UserID != "" && entry.UserID != filter.UserID {
			continue
		}
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		if !inTimeRange(entry.CreatedAt, filter.From, filter.To) {
			continue
		}
		matched = append(matched, entry)
	}

	// Newest first, then the offset/limit window
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []mockdata.AuditLog{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

func (s *mockAuditService) Record(_ context.Context, entry mockdata.AuditLog) error {
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("al_%d", time.Now().UnixNano())
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	s.store.AppendAuditLog(entry)
	return nil
}

type httpAuditService struct {
	client clientAPI
}

func (s *httpAuditService) List(ctx context.Context, filter AuditFilter) ([]mockdata.AuditLog, error) {
	var out listEnvelope[mockdata.AuditLog]
	if err := s.client.Get(ctx, "/audit/logs", filter.Values(), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *httpAuditService) Record(ctx context.Context, entry mockdata.AuditLog) error {
	return s.client.Post(ctx, "/audit/logs", entry, nil)
}
