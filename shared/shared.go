package shared

import (
	"context"
	"encoding/json"
	"hotelier/shared/cache"
	"hotelier/shared/dto"
	"strings"

	"github.com/rs/zerolog/log"
)

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func FilterByField(value any, field, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the given parts into a colon-separated cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a deterministic cache key from query params
// and a filter group. Filter args are JSON-encoded, which sorts map keys.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	encodedArgs, err := json.Marshal(args)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode filter args for cache key")
	}

	encodedParams, err := json.Marshal(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode query params for cache key")
	}

	return BuildCacheKey(prefix, string(encodedParams), where, string(encodedArgs))
}

// InvalidateCaches drops every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, store cache.RedisCache, prefix string) {
	if err := store.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
