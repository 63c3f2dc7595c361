package delivery

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postInstallContext(t *testing.T, body string, query url.Values, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	target := "/api/devices/postinstall"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestNormalizeChildIDPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		query   url.Values
		headers map[string]string
		want    string
	}{
		{
			name:  "body beats header and query",
			body:  `{"child_id":"from-body"}`,
			query: url.Values{"child_id": {"from-query"}},
			headers: map[string]string{
				"x-child-id": "from-header",
			},
			want: "from-body",
		},
		{
			name: "legacy body alias",
			body: `{"selectedChildId":"legacy-body"}`,
			want: "legacy-body",
		},
		{
			name:    "header beats query",
			query:   url.Values{"child_id": {"from-query"}},
			headers: map[string]string{"x-child-id": "from-header"},
			want:    "from-header",
		},
		{
			name:  "query primary name",
			query: url.Values{"child_id": {"from-query"}},
			want:  "from-query",
		},
		{
			name:  "query legacy alias",
			query: url.Values{"selectedChildId": {"legacy-query"}},
			want:  "legacy-query",
		},
		{
			name: "nothing supplied",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := postInstallContext(t, tt.body, tt.query, tt.headers)
			assert.Equal(t, tt.want, normalizePostInstall(c).ChildID)
		})
	}
}

func TestNormalizeMalformedBodyIsTolerated(t *testing.T) {
	c := postInstallContext(t, `{not json at all`, url.Values{"child_id": {"from-query"}}, nil)
	in := normalizePostInstall(c)
	assert.Equal(t, "from-query", in.ChildID)
}

func TestNormalizeAppIDsBodyWinsOverQuery(t *testing.T) {
	c := postInstallContext(t,
		`{"child_id":"c","app_ids":["a","b"]}`,
		url.Values{"app_ids": {"x,y,z"}}, nil)
	assert.Equal(t, []string{"a", "b"}, normalizePostInstall(c).AppIDs)
}

func TestNormalizeEmptyBodyArrayWinsOverQuery(t *testing.T) {
	c := postInstallContext(t,
		`{"child_id":"c","app_ids":[]}`,
		url.Values{"app_ids": {"x,y"}}, nil)
	in := normalizePostInstall(c)
	require.NotNil(t, in.AppIDs)
	assert.Empty(t, in.AppIDs)
}

func TestNormalizeAppIDsFromQuery(t *testing.T) {
	c := postInstallContext(t, "", url.Values{"app_ids": {"a, ,b,,c"}}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, normalizePostInstall(c).AppIDs)
}

func TestNormalizeWebFilterConfig(t *testing.T) {
	t.Run("from body", func(t *testing.T) {
		c := postInstallContext(t, `{"web_filter_config":{"gamingBlocked":true}}`, nil, nil)
		in := normalizePostInstall(c)
		require.NotNil(t, in.WebFilters)
		assert.Equal(t, true, in.WebFilters["gamingBlocked"])
	})

	t.Run("from query", func(t *testing.T) {
		c := postInstallContext(t, "", url.Values{"web_filter_config": {`{"socialMediaBlocked":false}`}}, nil)
		in := normalizePostInstall(c)
		require.NotNil(t, in.WebFilters)
		assert.Equal(t, false, in.WebFilters["socialMediaBlocked"])
	})

	t.Run("absent stays nil for the default policy", func(t *testing.T) {
		c := postInstallContext(t, `{"child_id":"c"}`, nil, nil)
		assert.Nil(t, normalizePostInstall(c).WebFilters)
	})

	t.Run("unparseable query value ignored", func(t *testing.T) {
		c := postInstallContext(t, "", url.Values{"web_filter_config": {`{broken`}}, nil)
		assert.Nil(t, normalizePostInstall(c).WebFilters)
	})
}
