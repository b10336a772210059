package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"venuefinder-backend/config"
	"venuefinder-backend/models"
	"venuefinder-backend/routes"
	"venuefinder-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Venue{},
		&models.VenueImage{},
		&models.Amenity{},
		&models.VenueAmenity{},
		&models.SearchHistory{},
	))

	config.DB = db
	services.Sessions = services.NewMemorySessionStore()
	return routes.SetupRouter()
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const registerBody = `{
	"username": "kofi",
	"email": "kofi@example.com",
	"full_name": "Kofi Mensah",
	"password": "sturdy-harbor-42",
	"password2": "sturdy-harbor-42"
}`

func seedVenues(t *testing.T) {
	t.Helper()

	restaurants := models.Category{Name: "Restaurants", Slug: "restaurant", Icon: "🍽️", IsActive: true}
	require.NoError(t, config.DB.Create(&restaurants).Error)

	venues := []models.Venue{
		{
			CategoryID: restaurants.ID, Name: "Test Restaurant 1",
			City: "Accra", Area: "Osu", Address: "12 Oxford St",
			Latitude: 5.5571, Longitude: -0.1824,
			Rating: 4.5, PriceRange: models.PriceModerate, IsActive: true,
		},
		{
			CategoryID: restaurants.ID, Name: "Test Restaurant 2",
			City: "Accra", Area: "East Legon", Address: "1 Lagos Ave",
			Latitude: 5.6363, Longitude: -0.1711,
			Rating: 4.8, PriceRange: models.PriceExpensive, IsActive: true,
		},
	}
	for i := range venues {
		require.NoError(t, config.DB.Create(&venues[i]).Error)
	}

	image := models.VenueImage{VenueID: venues[0].ID, Image: "/media/dish.jpg", IsPrimary: true}
	require.NoError(t, config.DB.Create(&image).Error)
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	router := setupAPI(t)

	w := doRequest(router, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := parseBody(t, w)
	assert.Equal(t, "Registration successful", body["message"])
	token := body["token"].(string)
	require.NotEmpty(t, token)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "kofi", user["username"])
	assert.NotContains(t, user, "password")

	// The registration session authenticates subsequent requests.
	w = doRequest(router, http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	me := parseBody(t, w)
	assert.Equal(t, "kofi", me["username"])
	assert.Equal(t, "kofi@example.com", me["email"])

	// Fresh login issues a new working session.
	w = doRequest(router, http.MethodPost, "/api/auth/login",
		`{"username":"kofi","password":"sturdy-harbor-42"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	loginToken := parseBody(t, w)["token"].(string)

	w = doRequest(router, http.MethodGet, "/api/auth/me", "", loginToken)
	require.Equal(t, http.StatusOK, w.Code)

	// Logout invalidates the token.
	w = doRequest(router, http.MethodPost, "/api/auth/logout", "", loginToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/auth/me", "", loginToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/logout", "", loginToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidationAndConflict(t *testing.T) {
	router := setupAPI(t)

	mismatch := strings.Replace(registerBody, `"password2": "sturdy-harbor-42"`, `"password2": "different-52"`, 1)
	w := doRequest(router, http.MethodPost, "/api/auth/register", mismatch, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/register", registerBody, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	config.DB.Model(&models.User{}).Where("username = ?", "kofi").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setupAPI(t)

	w := doRequest(router, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/login",
		`{"username":"kofi","password":"not-the-password"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", parseBody(t, w)["error"])
}

func TestCategoriesEndpoint(t *testing.T) {
	router := setupAPI(t)
	require.NoError(t, (&services.SeedService{DB: config.DB}).Run())

	w := doRequest(router, http.MethodGet, "/api/categories", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 6)
	assert.Equal(t, "Bars", categories[0]["name"], "sorted by name")
	assert.Equal(t, "restaurant", categories[5]["slug"])
}

func TestSearchEndpoint(t *testing.T) {
	router := setupAPI(t)
	seedVenues(t)

	t.Run("missing params", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/search?city=Accra", "", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Category and city are required", parseBody(t, w)["error"])
	})

	t.Run("category and city", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/search?category=restaurant&city=Accra", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.EqualValues(t, 2, body["count"])

		results := body["results"].([]interface{})
		require.Len(t, results, 2)
		first := results[0].(map[string]interface{})
		second := results[1].(map[string]interface{})
		assert.Equal(t, "Test Restaurant 2", first["name"], "ordered by rating desc")
		assert.Equal(t, "Test Restaurant 1", second["name"])
		assert.Equal(t, "Restaurants", first["category_name"])
		assert.Nil(t, first["thumbnail"])

		thumbnail := second["thumbnail"].(string)
		assert.True(t, strings.HasSuffix(thumbnail, "/media/dish.jpg"))
		assert.True(t, strings.HasPrefix(thumbnail, "http"), "thumbnail is an absolute URL")
	})

	t.Run("area filter", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/search?category=restaurant&city=Accra&area=Osu", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.EqualValues(t, 1, body["count"])
		results := body["results"].([]interface{})
		assert.Equal(t, "Test Restaurant 1", results[0].(map[string]interface{})["name"])
	})
}

func TestSearchHistoryEndpoint(t *testing.T) {
	router := setupAPI(t)
	seedVenues(t)

	w := doRequest(router, http.MethodGet, "/api/search-history", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)
	token := parseBody(t, w)["token"].(string)

	// Two authenticated searches, one of them matching nothing.
	w = doRequest(router, http.MethodGet, "/api/search?category=restaurant&city=Accra", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodGet, "/api/search?category=restaurant&city=Atlantis", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, parseBody(t, w)["count"])

	// An anonymous search must not show up in anyone's history.
	w = doRequest(router, http.MethodGet, "/api/search?category=restaurant&city=Accra", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/search-history", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var history []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "Atlantis", history[0]["city"], "most recent first")
	assert.Equal(t, "Accra", history[1]["city"])
}

func TestVenueDetailEndpoint(t *testing.T) {
	router := setupAPI(t)
	seedVenues(t)

	var venue models.Venue
	require.NoError(t, config.DB.First(&venue, "name = ?", "Test Restaurant 1").Error)

	w := doRequest(router, http.MethodGet, "/api/venues/"+venue.ID.String(), "", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	assert.Equal(t, "Test Restaurant 1", body["name"])
	assert.Equal(t, "Accra", body["city"])
	assert.Equal(t, "Osu", body["area"])
	category := body["category"].(map[string]interface{})
	assert.Equal(t, "Restaurants", category["name"])
	images := body["images"].([]interface{})
	require.Len(t, images, 1)

	t.Run("unknown id", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/venues/00000000-0000-0000-0000-000000000000", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/venues/not-a-uuid", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
