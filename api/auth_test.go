package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"homeledger/config"
	"homeledger/logger"
	"homeledger/middleware"
	"homeledger/models"
	"homeledger/repository"
	"homeledger/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

// newAuthHandler 基于给定数据库组装认证处理器，token 使用测试密钥签发
func newAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	issue := func(userID uint, username string) (string, error) {
		return middleware.GenerateToken(userID, username, cfg.JWT.ExpireTime)
	}
	return NewAuthHandler(service.NewAccountService(repository.NewUserStore(db), issue, logger.Nop()))
}

var userColumns = []string{"id", "username", "name", "password", "email", "status", "created_at", "updated_at", "deleted_at"}

func testAuthConfig() *config.Config {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	return cfg
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := testAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	// 用户名不存在
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", newAuthHandler(db, cfg).Register)

	w := postJSON(router, "/register", `{"username":"newuser","password":"password123","name":"小明"}`)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(200), resp["code"])
	assert.Equal(t, "注册成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.UserStatusActive, data["status"])
	assert.NotContains(t, data, "password")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_UsernameExists(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := testAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	router := gin.New()
	router.POST("/register", newAuthHandler(db, cfg).Register)

	w := postJSON(router, "/register", `{"username":"existinguser","password":"password123"}`)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "用户名已存在", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := testAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(7, "loginuser", "登录用户", string(hashed), "login@x.com", models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/login", newAuthHandler(db, cfg).Login)

	w := postJSON(router, "/login", `{"username":"loginuser","password":"password123"}`)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	claims, err := middleware.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tests := []struct {
		name string
		rows *sqlmock.Rows
		body string
		code int
	}{
		{"用户不存在", sqlmock.NewRows(userColumns), `{"username":"nouser","password":"any"}`, 401},
		{"密码错误", sqlmock.NewRows(userColumns).
			AddRow(1, "u", "", string(hashed), "", models.UserStatusActive, time.Now(), time.Now(), nil),
			`{"username":"u","password":"wrong"}`, 401},
		{"账号锁定", sqlmock.NewRows(userColumns).
			AddRow(1, "u", "", string(hashed), "", models.UserStatusLocked, time.Now(), time.Now(), nil),
			`{"username":"u","password":"password123"}`, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			cfg := testAuthConfig()
			defer func() { config.GlobalConfig = nil }()

			mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(tt.rows)

			router := gin.New()
			router.POST("/login", newAuthHandler(db, cfg).Login)
			w := postJSON(router, "/login", tt.body)

			assert.Equal(t, tt.code, w.Code)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuthHandler_Login_BadRequest(t *testing.T) {
	cfg := testAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	router := gin.New()
	router.POST("/login", newAuthHandler(nil, cfg).Login)
	w := postJSON(router, "/login", `{"username":""}`)
	assert.Equal(t, 400, w.Code)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := testAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "u", "", string(hashed), "", models.UserStatusActive, time.Now(), time.Now(), nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `password`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(3))
	router.PUT("/password", newAuthHandler(db, cfg).ChangePassword)

	req := httptest.NewRequest("PUT", "/password", bytes.NewBufferString(`{"old_password":"oldpassword","new_password":"newpassword"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_ChangePassword_WrongOldPassword(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := testAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.MinCost)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "u", "", string(hashed), "", models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(3))
	router.PUT("/password", newAuthHandler(db, cfg).ChangePassword)

	req := httptest.NewRequest("PUT", "/password", bytes.NewBufferString(`{"old_password":"guess","new_password":"newpassword"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "原密码错误")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_GetProfile_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := testAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(sqlmock.NewRows(userColumns))

	router := gin.New()
	router.Use(setUserIDMiddleware(5))
	router.GET("/profile", newAuthHandler(db, cfg).GetProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/profile", nil))

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}
