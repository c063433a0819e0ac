package apiclient

import (
	"coder_edu_frontend/internal/config"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.APIConfig{BaseURL: srv.URL})
}

func TestClient_Do(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 3, "title": "Go"}`))
	})

	var out struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/courses",
		Token:  "tok",
		Body:   map[string]string{"title": "Go"},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "Go", gotBody["title"])
	assert.Equal(t, uint(3), out.ID)
}

func TestClient_Do_NoToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	var out []int
	require.NoError(t, c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/courses"}, &out))
	assert.Empty(t, gotAuth)
}

func TestClient_Do_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantDetail string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail":"expired"}`, wantErr: ErrAuthRequired},
		{name: "detail string", status: http.StatusBadRequest, body: `{"detail":"Already enrolled"}`, wantDetail: "Already enrolled"},
		{name: "detail list", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"field required"}]}`, wantDetail: `[{"msg":"field required"}]`},
		{name: "plain text", status: http.StatusBadGateway, body: `upstream down`, wantDetail: "upstream down"},
		{name: "empty body", status: http.StatusNotFound, body: ``, wantDetail: "Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			var se *ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Status)
			assert.Equal(t, tt.wantDetail, se.Detail)
			assert.True(t, IsStatus(err, tt.status))
		})
	}
}

func TestClient_Do_NoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var out map[string]interface{}
	require.NoError(t, c.Do(context.Background(), Request{Method: http.MethodDelete, Path: "/x"}, &out))
	assert.Nil(t, out)
}

func TestClient_Do_Form(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "ada", r.PostForm.Get("username"))
		w.Write([]byte(`{"access_token":"t","token_type":"bearer"}`))
	})

	var out map[string]string
	err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/auth/token",
		Form:   map[string]string{"username": "ada", "password": "pw"},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "t", out["access_token"])
}

func TestClient_Download(t *testing.T) {
	tests := []struct {
		name        string
		disposition string
		wantName    string
	}{
		{name: "header filename", disposition: `attachment; filename="lesson-1.pdf"`, wantName: "lesson-1.pdf"},
		{name: "fallback", wantName: "module-9.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.disposition != "" {
					w.Header().Set("Content-Disposition", tt.disposition)
				}
				w.Header().Set("Content-Type", "application/pdf")
				w.Write([]byte("%PDF-1.4 body"))
			})

			f, err := c.Download(context.Background(), Request{Path: "/modules/9/download"}, "module-9.pdf")
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, f.Name)
			assert.Equal(t, "application/pdf", f.ContentType)
			assert.Equal(t, []byte("%PDF-1.4 body"), f.Data)
		})
	}
}
