package shared

import (
	"busbooking/shared/failure"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the non-empty parts with ":".
func BuildCacheKey(parts ...any) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		key := fmt.Sprint(part)
		if key == "" {
			continue
		}

		keys = append(keys, key)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// ParseID reads a positive numeric identifier from a chi URL parameter.
func ParseID(request *http.Request, param string) (int64, error) {
	raw := chi.URLParam(request, param)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid %s parameter", param)) //nolint:wrapcheck
	}

	return id, nil
}
