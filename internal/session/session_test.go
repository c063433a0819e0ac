package session

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method, path, token string
}

// fakeAPI 按 "METHOD path" 返回预设结果
type fakeAPI struct {
	calls     []call
	responses map[string]interface{}
	errs      map[string]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{responses: map[string]interface{}{}, errs: map[string]error{}}
}

func (f *fakeAPI) Do(ctx context.Context, r apiclient.Request, out interface{}) error {
	key := r.Method + " " + r.Path
	f.calls = append(f.calls, call{r.Method, r.Path, r.Token})
	if err := f.errs[key]; err != nil {
		return err
	}
	if resp, ok := f.responses[key]; ok && out != nil {
		data, _ := json.Marshal(resp)
		return json.Unmarshal(data, out)
	}
	return nil
}

func (f *fakeAPI) Download(ctx context.Context, r apiclient.Request, fallback string) (*apiclient.File, error) {
	f.calls = append(f.calls, call{r.Method, r.Path, r.Token})
	return &apiclient.File{Name: fallback}, f.errs["GET "+r.Path]
}

type countingStore struct {
	MemoryStore
	clears int
}

func (c *countingStore) Clear() {
	c.clears++
	c.MemoryStore.Clear()
}

var student = model.User{ID: 1, Username: "ada", Role: model.Student}

func TestSession_Initialize(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		meErr     error
		wantUser  bool
		wantToken string
		wantCalls int
	}{
		{name: "anonymous", wantCalls: 0},
		{name: "restored", token: "good", wantUser: true, wantToken: "good", wantCalls: 1},
		{name: "rejected token", token: "bad", meErr: apiclient.ErrAuthRequired, wantCalls: 1},
		{name: "server down", token: "good", meErr: &apiclient.ServerError{Status: 503, Detail: "down"}, wantCalls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			api.responses["GET /users/me"] = student
			api.errs["GET /users/me"] = tt.meErr
			store := NewMemoryStore(tt.token)

			s := New(api, store)
			s.Initialize(context.Background())

			assert.Equal(t, tt.wantUser, s.Authenticated())
			assert.Equal(t, tt.wantToken, s.Token())
			got, _ := store.Load()
			assert.Equal(t, tt.wantToken, got)
			assert.Len(t, api.calls, tt.wantCalls)
		})
	}
}

func TestSession_Initialize_ExpiredJWT(t *testing.T) {
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("x"))
	require.NoError(t, err)

	api := newFakeAPI()
	store := NewMemoryStore(token)
	s := New(api, store)
	s.Initialize(context.Background())

	assert.False(t, s.Authenticated())
	assert.Empty(t, api.calls)
	_, ok := store.Load()
	assert.False(t, ok)
}

func TestSession_Login(t *testing.T) {
	api := newFakeAPI()
	api.responses["POST /auth/token"] = model.TokenResponse{AccessToken: "fresh", TokenType: "bearer"}
	api.responses["GET /users/me"] = student
	store := NewMemoryStore("")

	s := New(api, store)
	user, err := s.Login(context.Background(), "ada", "pw")
	require.NoError(t, err)

	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "fresh", s.Token())
	saved, _ := store.Load()
	assert.Equal(t, "fresh", saved)
	assert.Equal(t, "fresh", api.calls[1].token)
}

func TestSession_Login_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "401", err: apiclient.ErrAuthRequired, wantErr: ErrInvalidCredentials},
		{name: "400", err: &apiclient.ServerError{Status: 400, Detail: "Incorrect username or password"}, wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			api.errs["POST /auth/token"] = tt.err
			s := New(api, NewMemoryStore(""))

			_, err := s.Login(context.Background(), "ada", "nope")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, s.Authenticated())
		})
	}

	t.Run("server message surfaced", func(t *testing.T) {
		api := newFakeAPI()
		api.errs["POST /auth/token"] = &apiclient.ServerError{Status: 403, Detail: "Account disabled"}
		s := New(api, NewMemoryStore(""))

		_, err := s.Login(context.Background(), "ada", "pw")
		var se *apiclient.ServerError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "Account disabled", se.Detail)
	})
}

func TestSession_Logout(t *testing.T) {
	api := newFakeAPI()
	api.responses["GET /users/me"] = student
	store := NewMemoryStore("good")
	s := New(api, store)
	s.Initialize(context.Background())
	require.True(t, s.Authenticated())

	s.Logout()

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	_, ok := store.Load()
	assert.False(t, ok)
}

func TestSession_ExpiresOncePer401(t *testing.T) {
	api := newFakeAPI()
	api.responses["GET /users/me"] = student
	store := &countingStore{}
	store.Save("good")

	s := New(api, store)
	s.Initialize(context.Background())
	require.True(t, s.Authenticated())

	api.errs["GET /dashboard/student"] = apiclient.ErrAuthRequired
	err := s.DoAuth(context.Background(), apiclient.Request{Method: http.MethodGet, Path: "/dashboard/student"}, nil)
	assert.ErrorIs(t, err, apiclient.ErrAuthRequired)
	assert.Equal(t, 1, store.clears)
	assert.False(t, s.Authenticated())

	before := len(api.calls)
	err = s.DoAuth(context.Background(), apiclient.Request{Method: http.MethodGet, Path: "/dashboard/student"}, nil)
	assert.ErrorIs(t, err, apiclient.ErrAuthRequired)
	assert.Equal(t, before, len(api.calls), "no request may be issued without a token")
	assert.Equal(t, 1, store.clears)

	_, err = s.Download(context.Background(), apiclient.Request{Path: "/modules/1/download"}, "module-1.pdf")
	assert.ErrorIs(t, err, apiclient.ErrAuthRequired)
	assert.Equal(t, before, len(api.calls))
}

func TestSession_DoAnonymous(t *testing.T) {
	api := newFakeAPI()
	api.responses["GET /courses"] = []model.Course{{ID: 1}}
	s := New(api, NewMemoryStore(""))
	s.Initialize(context.Background())

	var courses []model.Course
	require.NoError(t, s.Do(context.Background(), apiclient.Request{Method: http.MethodGet, Path: "/courses"}, &courses))
	assert.Len(t, courses, 1)
	assert.Empty(t, api.calls[0].token)
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	sign := func(exp *jwt.NumericDate) string {
		tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: exp}).SignedString([]byte("k"))
		return tok
	}

	assert.True(t, tokenExpired(sign(jwt.NewNumericDate(now.Add(-time.Minute)))))
	assert.False(t, tokenExpired(sign(jwt.NewNumericDate(now.Add(time.Minute)))))
	assert.False(t, tokenExpired(sign(nil)))
	assert.False(t, tokenExpired("opaque-token"))
}
