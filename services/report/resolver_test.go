package report

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aymanashrafmounir/SaintMark-BookingSystem/models"
)

func TestResolveField(t *testing.T) {
	tests := []struct {
		name  string
		rec   models.RawRecord
		paths []FieldPath
		want  string
	}{
		{
			name:  "direct match wins over nested",
			rec:   models.RawRecord{"roomName": "X", "room": bson.M{"name": "Y"}},
			paths: roomPaths,
			want:  "X",
		},
		{
			name:  "nested sub-document",
			rec:   models.RawRecord{"room": bson.M{"name": "Y"}},
			paths: roomPaths,
			want:  "Y",
		},
		{
			name:  "later nested candidate",
			rec:   models.RawRecord{"room": bson.M{"title": "Main Hall"}},
			paths: roomPaths,
			want:  "Main Hall",
		},
		{
			name:  "singleton list unwraps",
			rec:   models.RawRecord{"room": bson.A{bson.M{"name": "Z"}}},
			paths: roomPaths,
			want:  "Z",
		},
		{
			name:  "multi-element list fails to sentinel",
			rec:   models.RawRecord{"room": bson.A{bson.M{"name": "Z"}, bson.M{"name": "W"}}},
			paths: roomPaths,
			want:  Unspecified,
		},
		{
			name:  "absent attribute falls back to sentinel",
			rec:   models.RawRecord{"unrelated": 1},
			paths: roomPaths,
			want:  Unspecified,
		},
		{
			name:  "empty string does not resolve",
			rec:   models.RawRecord{"roomName": "   ", "room": bson.M{"name": "Y"}},
			paths: roomPaths,
			want:  "Y",
		},
		{
			name:  "provider falls through to staff paths",
			rec:   models.RawRecord{"staff": bson.M{"fullName": "Mina"}},
			paths: providerPaths,
			want:  "Mina",
		},
		{
			name:  "numeric value is stringified",
			rec:   models.RawRecord{"roomName": 3},
			paths: roomPaths,
			want:  "3",
		},
		{
			name:  "values are trimmed",
			rec:   models.RawRecord{"serviceName": "  choir practice  "},
			paths: servicePaths,
			want:  "choir practice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveField(tt.rec, tt.paths, Unspecified)
			if got != tt.want {
				t.Errorf("ResolveField() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveFieldIsPure(t *testing.T) {
	rec := models.RawRecord{"room": bson.M{"name": "Y"}}
	for i := 0; i < 3; i++ {
		if got := ResolveField(rec, roomPaths, Unspecified); got != "Y" {
			t.Fatalf("call %d: ResolveField() = %q, want %q", i, got, "Y")
		}
	}
	if len(rec) != 1 {
		t.Errorf("record mutated: %v", rec)
	}
}
