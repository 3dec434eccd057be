package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipsy/internal/app/ds"
	"shipsy/internal/app/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	registered  *ds.User
	registerErr error
	loginToken  string
	loginErr    error
	updated     *ds.User
}

func (f *fakeUserRepo) RegisterUser(user ds.User) (ds.User, error) {
	if f.registerErr != nil {
		return ds.User{}, f.registerErr
	}
	user.UserID = 1
	user.Password = ""
	f.registered = &user
	return user, nil
}

func (f *fakeUserRepo) LoginUser(username, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeUserRepo) LogoutUser(userID int) error {
	return nil
}

func (f *fakeUserRepo) GetUserByID(userID int) (*ds.User, error) {
	return &ds.User{UserID: userID, Username: "admin", Password: "hash"}, nil
}

func (f *fakeUserRepo) UpdateUser(user ds.User) error {
	f.updated = &user
	return nil
}

func newUserRouter(repo UserRepository) *httptest.Server {
	router := newTestEngine()
	h := &UserHandler{Repository: repo}
	router.POST("/api/users/register", h.RegisterUserAPI)
	router.POST("/api/users/login", h.LoginUserAPI)
	return httptest.NewServer(router)
}

func TestRegisterUser_MissingFields(t *testing.T) {
	srv := newUserRouter(&fakeUserRepo{})
	defer srv.Close()

	res, err := http.Post(srv.URL+"/api/users/register", "application/json",
		bytes.NewBufferString(`{"username":"bob"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var body struct {
		Required []string `json:"required"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	res.Body.Close()
	assert.ElementsMatch(t, []string{"email", "password"}, body.Required)
}

func TestRegisterUser_Conflict(t *testing.T) {
	srv := newUserRouter(&fakeUserRepo{registerErr: repository.ErrUserExists})
	defer srv.Close()

	res, err := http.Post(srv.URL+"/api/users/register", "application/json",
		bytes.NewBufferString(`{"username":"bob","email":"bob@shipsy.com","password":"pw"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	res.Body.Close()
}

func TestRegisterUser_PasswordNotEchoed(t *testing.T) {
	srv := newUserRouter(&fakeUserRepo{})
	defer srv.Close()

	res, err := http.Post(srv.URL+"/api/users/register", "application/json",
		bytes.NewBufferString(`{"username":"bob","email":"bob@shipsy.com","password":"pw"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	raw := new(bytes.Buffer)
	_, err = raw.ReadFrom(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	assert.NotContains(t, raw.String(), `"password"`)
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	srv := newUserRouter(&fakeUserRepo{loginErr: repository.ErrInvalidCredentials})
	defer srv.Close()

	res, err := http.Post(srv.URL+"/api/users/login", "application/json",
		bytes.NewBufferString(`{"username":"bob","password":"wrong"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res.Body.Close()
}

func TestLoginUser_ReturnsToken(t *testing.T) {
	srv := newUserRouter(&fakeUserRepo{loginToken: "signed.jwt.token"})
	defer srv.Close()

	res, err := http.Post(srv.URL+"/api/users/login", "application/json",
		bytes.NewBufferString(`{"username":"bob","password":"pw"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	res.Body.Close()
	assert.Equal(t, "signed.jwt.token", body.Token)

	var gotCookie bool
	for _, c := range res.Cookies() {
		if c.Name == "jwt" && c.Value == "signed.jwt.token" {
			gotCookie = true
		}
	}
	assert.True(t, gotCookie, "login must set the jwt cookie")
}
