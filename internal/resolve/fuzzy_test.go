package resolve

import (
	"reflect"
	"testing"
)

func TestSuggest(t *testing.T) {
	catalog := []string{
		"statuses.update",
		"statuses.user_timeline",
		"statuses.public_timeline",
		"direct_messages",
		"friendships.exists",
	}

	tests := []struct {
		name       string
		query      string
		candidates []string
		want       []string
	}{
		{
			name:       "exact match wins outright",
			query:      "statuses.update",
			candidates: catalog,
			want:       []string{"statuses.update"},
		},
		{
			name:       "exact match is case-insensitive",
			query:      "Statuses.Update",
			candidates: catalog,
			want:       []string{"statuses.update"},
		},
		{
			name:       "typo finds the intended operation first",
			query:      "statuses.updte",
			candidates: catalog,
			want:       []string{"statuses.update", "statuses.user_timeline"},
		},
		{
			name:       "no match returns nil",
			query:      "zzzzzz",
			candidates: catalog,
			want:       nil,
		},
		{
			name:       "empty query returns nil",
			query:      "",
			candidates: catalog,
			want:       nil,
		},
		{
			name:       "empty candidates returns nil",
			query:      "statuses.update",
			candidates: nil,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.query, tt.candidates)
			if len(got) > DefaultLimit {
				t.Fatalf("got %d suggestions, limit is %d", len(got), DefaultLimit)
			}
			if tt.want == nil {
				if got != nil {
					t.Errorf("Suggest(%q) = %v, want nil", tt.query, got)
				}
				return
			}
			if len(got) == 0 || got[0] != tt.want[0] {
				t.Errorf("Suggest(%q) = %v, want first %q", tt.query, got, tt.want[0])
			}
		})
	}
}

func TestSuggestN(t *testing.T) {
	candidates := []string{"favorites", "favorites.create", "favorites.destroy"}
	got := SuggestN("favorit", candidates, 1)
	if !reflect.DeepEqual(got, []string{"favorites"}) {
		t.Errorf("SuggestN = %v, want [favorites]", got)
	}
	if got := SuggestN("favorit", candidates, 0); got != nil {
		t.Errorf("limit 0: got %v, want nil", got)
	}
}
