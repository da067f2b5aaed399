package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"biblioteca-backend/config"
	"biblioteca-backend/logger"
	"biblioteca-backend/models"
	"biblioteca-backend/router"
)

type IntegrationTestSuite struct {
	suite.Suite
	db         *gorm.DB
	router     *gin.Engine
	adminToken string
	adminID    uint
}

func (suite *IntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(logger.Options{Level: "error", Output: io.Discard})

	db, err := gorm.Open(
		sqlite.Open("file:integration?mode=memory&cache=shared"),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		suite.T().Fatal("Failed to enable foreign keys:", err)
	}
	if err := config.Migrate(db); err != nil {
		suite.T().Fatal("Failed to migrate schema:", err)
	}
	suite.db = db

	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	suite.router = router.New(db, cfg)
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Clean all tables before each test
	suite.db.Exec("DELETE FROM loans")
	suite.db.Exec("DELETE FROM books")
	suite.db.Exec("DELETE FROM categories")
	suite.db.Exec("DELETE FROM users")

	suite.adminID = suite.register("ana", "secreta1", models.RoleAdministrator)
	suite.adminToken = suite.login("ana", "secreta1")
}

func (suite *IntegrationTestSuite) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		suite.NoError(err)
		reader = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	suite.NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *IntegrationTestSuite) register(username, password string, role models.UserRole) uint {
	w := suite.do("POST", "/usuarios", models.RegisterRequest{
		Username: username,
		Password: password,
		Email:    username + "@example.com",
		Role:     role,
	}, "")
	suite.Equal(http.StatusCreated, w.Code)

	var resp struct {
		UserID uint `json:"usuario_id"`
	}
	suite.decode(w, &resp)
	suite.NotZero(resp.UserID)
	return resp.UserID
}

func (suite *IntegrationTestSuite) login(username, password string) string {
	w := suite.do("POST", "/login", models.LoginRequest{
		Username: username,
		Password: password,
	}, "")
	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	suite.decode(w, &resp)
	suite.NotEmpty(resp.Token)
	return resp.Token
}

func (suite *IntegrationTestSuite) createCategory(name string) uint {
	w := suite.do("POST", "/categorias", models.CategoryRequest{Name: name}, suite.adminToken)
	suite.Equal(http.StatusCreated, w.Code)

	var resp struct {
		CategoryID uint `json:"categoria_id"`
	}
	suite.decode(w, &resp)
	return resp.CategoryID
}

func (suite *IntegrationTestSuite) createBook(categoryID uint) uint {
	w := suite.do("POST", "/libros", models.BookRequest{
		Title:           "La casa de los espíritus",
		Author:          "Isabel Allende",
		PublicationDate: "1982-01-01",
		Editorial:       "Plaza & Janés",
		Language:        "es",
		CategoryID:      categoryID,
	}, suite.adminToken)
	suite.Equal(http.StatusCreated, w.Code)

	var resp struct {
		BookID uint `json:"libro_id"`
	}
	suite.decode(w, &resp)
	return resp.BookID
}

func (suite *IntegrationTestSuite) TestLoginWrongPassword() {
	w := suite.do("POST", "/login", models.LoginRequest{
		Username: "ana",
		Password: "equivocada",
	}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.NotContains(w.Body.String(), "token")
}

func (suite *IntegrationTestSuite) TestDuplicateUsername() {
	w := suite.do("POST", "/usuarios", models.RegisterRequest{
		Username: "ana",
		Password: "otracosa",
		Email:    "ana2@example.com",
	}, "")
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *IntegrationTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.do("GET", "/libros", nil, "")
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("GET", "/libros", nil, "garbage-token")
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *IntegrationTestSuite) TestAdminOnlyMutation() {
	suite.register("pepe", "secreta1", models.RoleRegular)
	pepeToken := suite.login("pepe", "secreta1")

	w := suite.do("POST", "/categorias", models.CategoryRequest{Name: "Fiction"}, pepeToken)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do("POST", "/categorias", models.CategoryRequest{Name: "Fiction"}, suite.adminToken)
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *IntegrationTestSuite) TestCreateBookMissingCategory() {
	w := suite.do("POST", "/libros", models.BookRequest{
		Title:           "Huérfano",
		Author:          "Nadie",
		PublicationDate: "2000-01-01",
		CategoryID:      999,
	}, suite.adminToken)
	suite.Equal(http.StatusInternalServerError, w.Code)

	// No partial row
	w = suite.do("GET", "/libros", nil, suite.adminToken)
	suite.Equal(http.StatusOK, w.Code)
	var books []models.Book
	suite.decode(w, &books)
	suite.Empty(books)
}

func (suite *IntegrationTestSuite) TestUpdateMissingBook() {
	categoryID := suite.createCategory("Fiction")

	w := suite.do("PUT", "/libros/42", models.BookRequest{
		Title:           "Fantasma",
		Author:          "Nadie",
		PublicationDate: "2000-01-01",
		CategoryID:      categoryID,
	}, suite.adminToken)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestValidationRejectedBeforeStore() {
	w := suite.do("POST", "/categorias", map[string]string{}, suite.adminToken)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestLoanListIsAdministratorOnly() {
	suite.register("pepe", "secreta1", models.RoleRegular)
	pepeToken := suite.login("pepe", "secreta1")

	w := suite.do("GET", "/prestamos", nil, pepeToken)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do("GET", "/prestamos", nil, suite.adminToken)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestLoanCreationBoundToCaller() {
	pepeID := suite.register("pepe", "secreta1", models.RoleRegular)
	suite.register("luis", "secreta1", models.RoleRegular)
	luisToken := suite.login("luis", "secreta1")

	categoryID := suite.createCategory("Fiction")
	bookID := suite.createBook(categoryID)

	// luis cannot record a loan for pepe
	w := suite.do("POST", "/prestamos", models.CreateLoanRequest{
		UserID:   pepeID,
		BookID:   bookID,
		LoanDate: "2026-08-01",
	}, luisToken)
	suite.Equal(http.StatusUnauthorized, w.Code)

	// nor view pepe's loans
	w = suite.do("GET", fmt.Sprintf("/prestamos/usuario/%d", pepeID), nil, luisToken)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestEndToEndLoanFlow() {
	// ana (administrator) builds the catalog
	categoryID := suite.createCategory("Fiction")
	bookID := suite.createBook(categoryID)

	w := suite.do("GET", "/libros", nil, suite.adminToken)
	suite.Equal(http.StatusOK, w.Code)
	var books []models.Book
	suite.decode(w, &books)
	suite.Require().Len(books, 1)
	suite.Equal(categoryID, books[0].CategoryID)

	// a regular user borrows the book
	luisID := suite.register("luis", "secreta1", models.RoleRegular)
	luisToken := suite.login("luis", "secreta1")

	w = suite.do("POST", "/prestamos", models.CreateLoanRequest{
		UserID:   luisID,
		BookID:   bookID,
		LoanDate: "2026-08-01",
	}, luisToken)
	suite.Equal(http.StatusCreated, w.Code)

	var created struct {
		LoanID uint `json:"prestamo_id"`
	}
	suite.decode(w, &created)
	suite.NotZero(created.LoanID)

	w = suite.do("GET", fmt.Sprintf("/prestamos/usuario/%d", luisID), nil, luisToken)
	suite.Equal(http.StatusOK, w.Code)
	var loans []models.Loan
	suite.decode(w, &loans)
	suite.Require().Len(loans, 1)
	suite.Equal(created.LoanID, loans[0].ID)
	suite.Equal(models.LoanOutstanding, loans[0].Status)

	// return it
	w = suite.do("PUT", fmt.Sprintf("/prestamos/%d/devolver", created.LoanID),
		models.ReturnLoanRequest{ReturnDate: "2026-08-15"}, luisToken)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", fmt.Sprintf("/prestamos/usuario/%d", luisID), nil, luisToken)
	suite.decode(w, &loans)
	suite.Require().Len(loans, 1)
	suite.Equal(models.LoanReturned, loans[0].Status)
	suite.Require().NotNil(loans[0].ReturnDate)
	suite.Equal("2026-08-15", *loans[0].ReturnDate)

	// a second return is rejected
	w = suite.do("PUT", fmt.Sprintf("/prestamos/%d/devolver", created.LoanID),
		models.ReturnLoanRequest{ReturnDate: "2026-08-20"}, luisToken)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *IntegrationTestSuite) TestDeleteLoanIsAdministratorOnly() {
	luisID := suite.register("luis", "secreta1", models.RoleRegular)
	luisToken := suite.login("luis", "secreta1")

	categoryID := suite.createCategory("Fiction")
	bookID := suite.createBook(categoryID)

	w := suite.do("POST", "/prestamos", models.CreateLoanRequest{
		UserID:   luisID,
		BookID:   bookID,
		LoanDate: "2026-08-01",
	}, luisToken)
	suite.Equal(http.StatusCreated, w.Code)

	var created struct {
		LoanID uint `json:"prestamo_id"`
	}
	suite.decode(w, &created)

	w = suite.do("DELETE", fmt.Sprintf("/prestamos/%d", created.LoanID), nil, luisToken)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do("DELETE", fmt.Sprintf("/prestamos/%d", created.LoanID), nil, suite.adminToken)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("DELETE", fmt.Sprintf("/prestamos/%d", created.LoanID), nil, suite.adminToken)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestHealth() {
	w := suite.do("GET", "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
