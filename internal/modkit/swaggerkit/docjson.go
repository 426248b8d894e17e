package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"creatorscout/internal/core/version"
	"creatorscout/internal/modkit/httpkit"
	perr "creatorscout/internal/platform/errors"
	phttp "creatorscout/internal/platform/net/http"
	docs "creatorscout/internal/services/api/docs"
)

// docReader renders the registered swag document, tests swap it
var docReader = func() string {
	docs.SwaggerInfo.Version = version.Version
	return docs.SwaggerInfo.ReadDoc()
}

type patch func(spec map[string]any)

// serveDocJSON serves the swag document after the shared patches
func serveDocJSON(titleSuffix string) http.HandlerFunc {
	patches := []patch{
		pinOpenAPI(httpkit.APIPrefix),
		retitle(titleSuffix),
		addErrorSchema,
		defaultResponse(http.StatusBadRequest, "usernames must contain at least 1 item"),
		defaultResponse(http.StatusInternalServerError, "panic recovered"),
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			phttp.RespondError(w, r, perr.Wrap(err, perr.ErrorCodeUnknown, "api document does not parse"))
			return
		}
		for _, p := range patches {
			p(spec)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// pinOpenAPI keeps the document on 3.0.3 with one server, the bundled UI does not render 3.1
func pinOpenAPI(server string) patch {
	return func(spec map[string]any) {
		delete(spec, "swagger")
		if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
			spec["openapi"] = "3.0.3"
		}
		if _, ok := spec["servers"]; !ok {
			spec["servers"] = []any{map[string]any{"url": server}}
		}
	}
}

func retitle(suffix string) patch {
	return func(spec map[string]any) {
		if suffix == "" {
			return
		}
		info := child(spec, "info")
		if title, ok := info["title"].(string); ok {
			info["title"] = title + " " + suffix
		}
	}
}

// child returns m[key] as a map, creating it when missing
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// addErrorSchema describes the failure side of the response envelope
func addErrorSchema(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorEnvelope"]; ok {
		return
	}
	schemas["ErrorEnvelope"] = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "description": "error code, see platform/errors"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status", "error"},
	}
}

// defaultResponse adds status to every operation that does not document it
func defaultResponse(status int, example string) patch {
	key := http.StatusText(status)
	return func(spec map[string]any) {
		paths, ok := spec["paths"].(map[string]any)
		if !ok {
			return
		}
		resp := map[string]any{
			"description": key,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"$ref": "#/components/schemas/ErrorEnvelope"},
					"example": map[string]any{
						"status_code": status,
						"status":      key,
						"error":       example,
					},
				},
			},
		}
		code := strconv.Itoa(status)
		for _, item := range paths {
			ops, ok := item.(map[string]any)
			if !ok {
				continue
			}
			for _, v := range ops {
				op, ok := v.(map[string]any)
				if !ok {
					continue
				}
				responses := child(op, "responses")
				if _, ok := responses[code]; !ok {
					responses[code] = resp
				}
			}
		}
	}
}
