package hal

import (
	"reflect"
	"testing"
)

type item struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func TestResolveLink_Found(t *testing.T) {
	res := NewResource(item{ID: "42"}, Links{
		{Rel: RelPut, Href: "/items/42", Method: "PUT"},
		{Rel: RelDelete, Href: "/items/42/delete"},
	})

	href, err := ResolveLink(res, RelPut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if href != "/items/42" {
		t.Errorf("expected /items/42, got %q", href)
	}

	href, err = res.Link(RelDelete)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if href != "/items/42/delete" {
		t.Errorf("expected /items/42/delete, got %q", href)
	}
}

func TestResolveLink_DeleteScenario(t *testing.T) {
	res := NewResource(item{}, Links{{Rel: "delete", Href: "/items/42"}})

	href, err := ResolveLink(res, "delete")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if href != "/items/42" {
		t.Errorf("expected /items/42, got %q", href)
	}

	href, err = ResolveLink(res, "put")
	if err == nil {
		t.Fatal("expected error for missing put link")
	}
	if !IsLinkNotFound(err) {
		t.Errorf("expected LINK_NOT_FOUND, got %v", err)
	}
	if href != "" {
		t.Errorf("expected no partial URL, got %q", href)
	}
}

func TestResolveLink_ExactMatchOnly(t *testing.T) {
	res := NewResource(item{}, Links{
		{Rel: "put-draft", Href: "/drafts/1"},
		{Rel: "PUT", Href: "/upper/1"},
	})

	if _, err := ResolveLink(res, "put"); !IsLinkNotFound(err) {
		t.Errorf("expected LINK_NOT_FOUND for prefix/case variants, got %v", err)
	}
}

func TestResolveLink_InvalidResource(t *testing.T) {
	tests := []struct {
		name     string
		resource Linked
	}{
		{"nil interface", nil},
		{"nil resource pointer", (*Resource[item])(nil)},
		{"no link collection", &Resource[item]{Payload: item{ID: "1"}}},
		{"nil collection pointer", (*Collection[item])(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveLink(tt.resource, RelPut)
			if !IsInvalidResource(err) {
				t.Errorf("expected INVALID_RESOURCE, got %v", err)
			}
			if IsLinkNotFound(err) {
				t.Error("INVALID_RESOURCE must not also report LINK_NOT_FOUND")
			}
		})
	}
}

func TestResolveLink_EmptyCollectionIsLinkNotFound(t *testing.T) {
	res := NewResource(item{}, Links{})
	if _, err := ResolveLink(res, RelPut); !IsLinkNotFound(err) {
		t.Errorf("expected LINK_NOT_FOUND for empty collection, got %v", err)
	}
}

func TestResolve_ReturnsMethod(t *testing.T) {
	res := NewResource(item{}, Links{{Rel: RelUnlink, Href: "/avatars/1/unlink", Method: "DELETE"}})

	link, err := Resolve(res, RelUnlink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.Method != "DELETE" {
		t.Errorf("expected DELETE, got %q", link.Method)
	}
}

func TestResolveLink_DoesNotMutate(t *testing.T) {
	links := Links{{Rel: RelPut, Href: "/a"}, {Rel: RelDelete, Href: "/b"}}
	res := NewResource(item{ID: "1"}, links)
	before := append(Links(nil), res.Links...)

	_, _ = ResolveLink(res, RelPut)
	_, _ = ResolveLink(res, "missing")

	if !reflect.DeepEqual(before, res.Links) {
		t.Errorf("links mutated: %v", res.Links)
	}
}

func TestLinks_Rels(t *testing.T) {
	links := Links{{Rel: "a"}, {Rel: "b"}}
	if got := links.Rels(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Rels() = %v", got)
	}
}

func TestConventions(t *testing.T) {
	want := map[string]string{
		"put":    "update",
		"delete": "remove",
		"unlink": "detach a linked sub-resource without deleting it",
		"link":   "attach an existing sub-resource",
	}
	if len(Conventions) != len(want) {
		t.Fatalf("expected %d conventions, got %d", len(want), len(Conventions))
	}
	for _, c := range Conventions {
		if want[c.Rel] != c.Operation {
			t.Errorf("convention %q = %q, want %q", c.Rel, c.Operation, want[c.Rel])
		}
	}
}
