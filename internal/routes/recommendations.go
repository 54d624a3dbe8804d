package routes

import (
	"errors"
	"net/http"

	"tastedive-server/internal/deps"

	pkghttpx "tastedive-server/pkg/httpx"
	pkgoracle "tastedive-server/pkg/oracle"
)

// Recommendations handles GET /recommendations?userId=
// The oracle gets exactly one invocation per request; every failure mode
// still yields a renderable body with an empty recommendations list.
func Recommendations(d deps.ServerDeps) http.HandlerFunc {
	empty := func() map[string]any { return map[string]any{"recommendations": []any{}} }
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		claimed, herr := queryUserID(r)
		if herr != nil {
			pkghttpx.WriteErrorWith(w, r, herr, empty())
			return
		}
		userID, herr := effectiveUserID(r, claimed)
		if herr != nil {
			pkghttpx.WriteErrorWith(w, r, herr, empty())
			return
		}
		exists, err := d.Repo.UserExists(ctx, userID)
		if err != nil {
			pkghttpx.WriteErrorWith(w, r, pkghttpx.Internal("failed to look up user", err), empty())
			return
		}
		if !exists {
			pkghttpx.WriteErrorWith(w, r, pkghttpx.BadRequest("invalid user", nil), empty())
			return
		}
		movies, err := d.Oracle.Recommend(ctx, userID)
		if err != nil {
			var pe *pkgoracle.ParseError
			if errors.As(err, &pe) {
				pkghttpx.WriteErrorWith(w, r, pkghttpx.Internal("recommendation engine returned invalid output", err), empty())
				return
			}
			pkghttpx.WriteErrorWith(w, r, pkghttpx.Internal("recommendation engine failed", err), empty())
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, movies)
	}
}
