// internal/adapters/out/firestore/helper_repository_fs.go
package firestore

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

// Decode helpers for snap.Data(). Documents written by older clients may carry
// numbers where we now store strings (and vice versa), so reads go through these.

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	case float64:
		return int64(t)
	default:
		return 0
	}
}

// asDecimal accepts decimal strings ("10.50") as well as legacy numeric fields.
func asDecimal(v any) (common.Decimal, error) {
	switch t := v.(type) {
	case nil:
		return common.Zero, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return common.Zero, nil
		}
		return common.ParseDecimal(strings.TrimSpace(t))
	case int64:
		return common.DecimalFromInt(t), nil
	case int:
		return common.DecimalFromInt(int64(t)), nil
	case float64:
		return common.ParseDecimal(fmt.Sprint(t))
	default:
		return common.Zero, fmt.Errorf("%w: %T", common.ErrInvalidDecimal, v)
	}
}

// asTime returns (time, ok)
func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), !t.IsZero()
	case *timestamppb.Timestamp:
		if t == nil {
			return time.Time{}, false
		}
		return t.AsTime().UTC(), true
	default:
		return time.Time{}, false
	}
}

func asMapAny(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

func asSliceAny(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

func decimalString(d common.Decimal) string {
	return d.WireString()
}
