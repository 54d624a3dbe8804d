package routes

import (
	"net/http"
	"strconv"

	pkghttpx "tastedive-server/pkg/httpx"
	pkgrequestctx "tastedive-server/pkg/requestctx"
)

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, *pkghttpx.HTTPError) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkghttpx.BadRequest("invalid id", err)
	}
	return id, nil
}

// queryUserID reads the optional userId query parameter. Absent is not an
// error; the caller falls back to the authenticated identity.
func queryUserID(r *http.Request) (int64, *pkghttpx.HTTPError) {
	s := r.URL.Query().Get("userId")
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkghttpx.BadRequest("invalid userId", err)
	}
	return id, nil
}

// effectiveUserID resolves which user a per-user operation acts on. The
// auth middleware has already verified the token and stashed the proven id
// in the context; a client-supplied userId is still accepted for
// compatibility with older clients but must agree with that identity.
// claimed == 0 means the client supplied none.
func effectiveUserID(r *http.Request, claimed int64) (int64, *pkghttpx.HTTPError) {
	trusted, ok := pkgrequestctx.UserID(r.Context())
	if !ok {
		return 0, pkghttpx.Unauthorized("authentication required", nil)
	}
	if claimed != 0 && claimed != trusted {
		return 0, pkghttpx.Forbidden("userId does not match authenticated user", nil)
	}
	return trusted, nil
}
