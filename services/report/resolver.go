package report

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

// FieldPath is one candidate location for a logical attribute: a sequence of
// keys leading from the record root to a scalar value.
type FieldPath []string

// Candidate path tables for the display attributes. Single-key (direct)
// paths are listed first and always tried before nested ones.
var (
	roomPaths = []FieldPath{
		{"roomName"},
		{"room", "name"},
		{"room", "roomName"},
		{"room", "title"},
	}
	servicePaths = []FieldPath{
		{"serviceName"},
		{"service", "name"},
		{"service", "serviceName"},
	}
	providerPaths = []FieldPath{
		{"providerName"},
		{"provider", "name"},
		{"provider", "fullName"},
		{"staff", "name"},
		{"staff", "fullName"},
	}
)

// ResolveField returns the first resolvable scalar among the candidate paths,
// stringified and trimmed, or fallback when no path yields a value. Direct
// top-level paths are consulted before nested ones.
func ResolveField(rec models.RawRecord, paths []FieldPath, fallback string) string {
	for _, path := range paths {
		if len(path) != 1 {
			continue
		}
		if v, ok := stringifyScalar(rec[path[0]]); ok {
			return v
		}
	}
	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		if v, ok := resolveNested(rec[path[0]], path[1:]); ok {
			return v
		}
	}
	return fallback
}

// resolveNested walks the remaining keys of a path. At each step the current
// value may be a single-element list of sub-documents (unwrapped to its
// element) or a sub-document (indexed by the next key); anything else fails.
func resolveNested(value any, keys []string) (string, bool) {
	current := value
	for _, key := range keys {
		if list, ok := asList(current); ok {
			if len(list) != 1 {
				return "", false
			}
			current = list[0]
		}
		doc, ok := asDocument(current)
		if !ok {
			return "", false
		}
		current = doc[key]
	}
	return stringifyScalar(current)
}

func asDocument(v any) (map[string]any, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case map[string]any:
		return d, true
	case models.RawRecord:
		return d, true
	case bson.D:
		return d.Map(), true
	default:
		return nil, false
	}
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case bson.A:
		return l, true
	case []any:
		return l, true
	default:
		return nil, false
	}
}

// stringifyScalar converts a resolved scalar to its trimmed display string.
// Nil, empty and composite values do not resolve.
func stringifyScalar(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		t := strings.TrimSpace(s)
		return t, t != ""
	case bool, int, int32, int64, float32, float64:
		return fmt.Sprint(s), true
	case primitive.ObjectID:
		return s.Hex(), true
	default:
		return "", false
	}
}
