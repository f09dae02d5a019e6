package handler

import (
	"context"
	"slices"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
)

// actorFromContext はメタデータ x-actor-id から操作者 ID を取り出します。
func actorFromContext(ctx context.Context) (string, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		for _, v := range md.Get(staffingv1.ActorMetadataKey) {
			if actor := strings.TrimSpace(v); actor != "" {
				return actor, nil
			}
		}
	}
	return "", status.Error(codes.Unauthenticated, staffingv1.ActorMetadataKey+" metadata is required")
}

func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, invalidField(field, "must be a date in YYYY-MM-DD format")
	}
	return &parsed, nil
}

// parseDatePatch は部分更新の日付項目を解釈します。set が false の場合は変更しません。
func parseDatePatch(field string, value *string, clear []string) (date *time.Time, set bool, err error) {
	if slices.Contains(clear, field) {
		if value != nil {
			return nil, false, invalidField(field, "cannot be both set and cleared")
		}
		return nil, true, nil
	}
	if value == nil {
		return nil, false, nil
	}
	date, err = parseDate(field, *value)
	if err != nil {
		return nil, false, err
	}
	if date == nil {
		return nil, false, invalidField(field, "use clear_fields to remove the value")
	}
	return date, true, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func int64Patch(field string, value *int64, clear []string) (*int64, bool, error) {
	if slices.Contains(clear, field) {
		if value != nil {
			return nil, false, invalidField(field, "cannot be both set and cleared")
		}
		return nil, true, nil
	}
	if value == nil {
		return nil, false, nil
	}
	v := *value
	return &v, true, nil
}

func stringPatch(field string, value *string, clear []string) (*string, bool, error) {
	if slices.Contains(clear, field) {
		if value != nil {
			return nil, false, invalidField(field, "cannot be both set and cleared")
		}
		return nil, true, nil
	}
	if value == nil {
		return nil, false, nil
	}
	v := *value
	return &v, true, nil
}

// transitionNames は現在の状態から要求できる遷移名を返します。終端状態では nil です。
func transitionNames(kind placement.Kind, current string) []string {
	allowed := placement.AllowedTransitions(kind, current)
	if len(allowed) == 0 {
		return nil
	}
	names := make([]string, len(allowed))
	for i, t := range allowed {
		names[i] = string(t)
	}
	return names
}
