package delivery

import (
	"encoding/json"
	"io"
	"strings"

	"safenest-backend/internal/device/dto"

	"github.com/gin-gonic/gin"
)

// postInstallBody is the tolerant shape of the postinstall request body.
// AppIDs stays nil when the field is absent so that an explicit empty array
// still wins over any query parameter.
type postInstallBody struct {
	ChildID         string         `json:"child_id"`
	SelectedChildID string         `json:"selectedChildId"`
	AppIDs          []string       `json:"app_ids"`
	WebFilterConfig map[string]any `json:"web_filter_config"`
}

// normalizePostInstall extracts the postinstall parameters from body, headers
// and query string. Each field is resolved by an ordered extractor chain so
// older client versions keep working; a malformed body reads as empty rather
// than failing the request.
func normalizePostInstall(c *gin.Context) *dto.PostInstallInput {
	var body postInstallBody
	if raw, err := io.ReadAll(c.Request.Body); err == nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			body = postInstallBody{}
		}
	}

	childID := firstNonEmpty(
		func() string { return body.ChildID },
		func() string { return body.SelectedChildID },
		func() string { return c.GetHeader("x-child-id") },
		func() string { return c.Query("child_id") },
		func() string { return c.Query("selectedChildId") },
	)

	appIDs := body.AppIDs
	if appIDs == nil {
		appIDs = splitCommaList(c.Query("app_ids"))
	}

	filters := body.WebFilterConfig
	if filters == nil {
		if q := c.Query("web_filter_config"); q != "" {
			if err := json.Unmarshal([]byte(q), &filters); err != nil {
				filters = nil
			}
		}
	}

	return &dto.PostInstallInput{
		ChildID:    childID,
		AppIDs:     appIDs,
		WebFilters: filters,
	}
}

func firstNonEmpty(sources ...func() string) string {
	for _, source := range sources {
		if v := strings.TrimSpace(source()); v != "" {
			return v
		}
	}
	return ""
}

func splitCommaList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
