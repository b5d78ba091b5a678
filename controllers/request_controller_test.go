package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errDBDown = errors.New("connection refused")

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	assert.NoError(t, err)

	database.DB = gdb
	return mock
}

func authedRequest(t *testing.T, method, path, body string, userID uint) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("userID", userID)
	return c, w
}

func TestCreateTeamRequestGuardSurfacesCountError(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "team_posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "max_members", "status", "owner_id"}).
			AddRow(1, "Hackathon crew", 4, "open", 2))

	// The duplicate-request guard must fail closed when the count fails,
	// not read the error as "no active request".
	mock.ExpectQuery(`SELECT count`).WillReturnError(errDBDown)

	c, w := authedRequest(t, http.MethodPost, "/requests", `{"post_id":1}`, 7)
	CreateTeamRequest(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
