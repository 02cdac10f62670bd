package shared_test

import (
	"strings"
	"testing"

	"hotelier/shared"
	"hotelier/shared/dto"
)

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b-1", "id", "bookings")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "id" || filter.Value != "b-1" || filter.Table != "bookings" {
		t.Errorf("unexpected filter %+v", filter)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected eq operator, got %s", filter.Operator)
	}
}

func TestFilterByField(t *testing.T) {
	group := shared.FilterByField("Room 1", "name", "rooms")

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "name" || filter.Value != "Room 1" || filter.Table != "rooms" {
		t.Errorf("unexpected filter %+v", filter)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "two parts",
			parts:    []string{"booking:get", "b-1"},
			expected: "booking:get:b-1",
		},
		{
			name:     "single part",
			parts:    []string{"room:statuses"},
			expected: "room:statuses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.parts...)

			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.NewestFirst()
	filter := dto.FilterGroup{}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Errorf("expected deterministic keys, got %s and %s", first, second)
	}

	if !strings.HasPrefix(first, "booking:gets:") {
		t.Errorf("expected key to start with prefix, got %s", first)
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{SortBy: "name"}, filter)
	if first == other {
		t.Errorf("expected different params to produce different keys, got %s twice", first)
	}
}
