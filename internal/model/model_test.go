package model

import "testing"

func TestReactionFromStored(t *testing.T) {
	tr, fa := true, false
	cases := []struct {
		name  string
		liked *bool
		want  Reaction
	}{
		{"absent row", nil, ReactionNone},
		{"liked", &tr, ReactionLiked},
		{"disliked", &fa, ReactionDisliked},
	}
	for _, tc := range cases {
		if got := ReactionFromStored(tc.liked); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStoredRoundTrip(t *testing.T) {
	for _, r := range []Reaction{ReactionLiked, ReactionDisliked} {
		if got := ReactionFromStored(r.Stored()); got != r {
			t.Errorf("round trip of %v produced %v", r, got)
		}
	}
	if ReactionNone.Stored() != nil {
		t.Error("ReactionNone must have no stored form")
	}
}

func TestStatusDerivation(t *testing.T) {
	if s := ReactionNone.Status(false); s != (InteractionStatus{}) {
		t.Errorf("no interaction must report all-false, got %+v", s)
	}
	if s := ReactionLiked.Status(true); !s.Liked || s.Disliked || !s.WatchLater {
		t.Errorf("liked status wrong: %+v", s)
	}
	// disliked is derived from the reaction, never an independent flag
	if s := ReactionDisliked.Status(false); s.Liked || !s.Disliked || s.WatchLater {
		t.Errorf("disliked status wrong: %+v", s)
	}
}
