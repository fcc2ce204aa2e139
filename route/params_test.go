package route

import "testing"

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		defaults Params
		params   Params
		key      string
		want     any
	}{
		{"caller overrides default", Params{"sort": "dateCreated"}, Params{"sort": "name"}, "sort", "name"},
		{"default fills gap", Params{"rpp": 10}, Params{"page": 2}, "rpp", 10},
		{"caller only", nil, Params{"page": 2}, "page", 2},
		{"nil caller value keeps default", Params{"rpp": 10}, Params{"rpp": nil}, "rpp", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.defaults, tt.params)
			if got[tt.key] != tt.want {
				t.Errorf("Merge()[%q] = %v, want %v", tt.key, got[tt.key], tt.want)
			}
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	defaults := Params{"rpp": 10}
	params := Params{"rpp": 50}

	_ = Merge(defaults, params)

	if defaults["rpp"] != 10 {
		t.Errorf("defaults mutated: %v", defaults)
	}
	if params["rpp"] != 50 {
		t.Errorf("params mutated: %v", params)
	}
}

func TestJoin_PathWins(t *testing.T) {
	joined := Join(PathParams{"id": "42"}, QueryParams{"id": "ignored", "embed": "owner"})
	if joined["id"] != "42" {
		t.Errorf("expected path id to win, got %v", joined["id"])
	}
	if joined["embed"] != "owner" {
		t.Errorf("expected embed=owner, got %v", joined["embed"])
	}
}

func TestParams_With(t *testing.T) {
	base := Params{"a": 1}
	next := base.With("b", 2)

	if _, ok := base["b"]; ok {
		t.Error("With must not modify the receiver")
	}
	if next["a"] != 1 || next["b"] != 2 {
		t.Errorf("unexpected result %v", next)
	}
}

func TestParams_WithOnNil(t *testing.T) {
	var p Params
	got := p.With("id", "1")
	if got["id"] != "1" {
		t.Errorf("expected id=1, got %v", got)
	}
}

func TestMerge_EmptySliceKeepsDefault(t *testing.T) {
	got := Merge(Params{"sort": "dateCreated"}, Params{"sort": []string{}, "embed": []any{nil}})
	if got["sort"] != "dateCreated" {
		t.Errorf("expected default sort kept, got %v", got["sort"])
	}
	if _, ok := got["embed"]; ok {
		t.Errorf("expected unset embed dropped, got %v", got["embed"])
	}

	if s := Expand(MustParse("items/{?sort}"), Params{"sort": "dateCreated"}, Params{"sort": []string{}}); s != "items/?sort=dateCreated" {
		t.Errorf("Expand() = %q", s)
	}
}
