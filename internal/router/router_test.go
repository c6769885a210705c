// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/buildflip/pc-inventory-backend/internal/database"
)

type RouterTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(suite.T().Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(database.RunMigrations(db))

	suite.db = db
	suite.router = Initialize(db)
}

func (suite *RouterTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var payload map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func (suite *RouterTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	payload := suite.decode(w)
	suite.Equal("ok", payload["status"])
	suite.Equal("pc-inventory-backend", payload["service"])
}

func (suite *RouterTestSuite) TestListPCsEmpty() {
	w := suite.request(http.MethodGet, "/api/pcs", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *RouterTestSuite) TestCreateAndFetchPC() {
	w := suite.request(http.MethodPost, "/api/pcs", map[string]interface{}{
		"pc_name":    "Gaming Rig #1",
		"build_date": "2024-01-15",
		"components": []map[string]interface{}{
			{"component_type": "cpu", "component_name": "Intel i5-10400F", "cost": 702},
			{"component_type": "gpu", "component_name": "RTX 3060 Ti", "cost": 1022},
			{"component_type": "case", "component_name": "NZXT H510", "cost": 948},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	created := suite.decode(w)
	suite.Equal("Gaming Rig #1", created["pc_name"])
	suite.Equal("building", created["status"])
	suite.Equal(2672.0, created["total_cost"])

	components := created["components"].([]interface{})
	suite.Require().Len(components, 3)
	suite.Equal("Intel i5-10400F", components[0].(map[string]interface{})["component_name"])
	suite.Equal("NZXT H510", components[2].(map[string]interface{})["component_name"])

	w = suite.request(http.MethodGet, "/api/pcs/"+created["id"].(string), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	fetched := suite.decode(w)
	suite.Equal("2024-01-15", fetched["build_date"])
	suite.Len(fetched["components"].([]interface{}), 3)
}

func (suite *RouterTestSuite) TestGetMissingPC() {
	w := suite.request(http.MethodGet, "/api/pcs/6f1f55a1-0db1-4a76-a1d7-86bb79a6bd01", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "PC not found"}`, w.Body.String())
}

func (suite *RouterTestSuite) TestGetPCWithMalformedID() {
	w := suite.request(http.MethodGet, "/api/pcs/not-a-uuid", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "PC not found"}`, w.Body.String())
}

func (suite *RouterTestSuite) TestSellPC() {
	w := suite.request(http.MethodPost, "/api/pcs", map[string]interface{}{
		"pc_name":    "Flip Build",
		"build_date": "2024-01-15",
		"components": []map[string]interface{}{
			{"component_type": "cpu", "component_name": "i5", "cost": 2000},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	id := suite.decode(w)["id"].(string)

	w = suite.request(http.MethodPost, "/api/pcs/"+id+"/sell", map[string]interface{}{
		"sale_date":         "2024-02-01",
		"actual_sale_price": 3000,
		"platform":          "finn.no",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	sold := suite.decode(w)
	suite.Equal("sold", sold["status"])
	suite.Equal(1000.0, sold["profit"])
	suite.Equal(50.0, sold["profit_percentage"])
	suite.Equal(17.0, sold["days_held"])
}

func (suite *RouterTestSuite) TestSellMissingPC() {
	w := suite.request(http.MethodPost, "/api/pcs/6f1f55a1-0db1-4a76-a1d7-86bb79a6bd01/sell", map[string]interface{}{
		"sale_date":         "2024-02-01",
		"actual_sale_price": 3000,
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "PC not found"}`, w.Body.String())
}

func (suite *RouterTestSuite) TestDeletePC() {
	w := suite.request(http.MethodPost, "/api/pcs", map[string]interface{}{"pc_name": "Short-lived"})
	suite.Require().Equal(http.StatusCreated, w.Code)
	id := suite.decode(w)["id"].(string)

	w = suite.request(http.MethodDelete, "/api/pcs/"+id, nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())

	w = suite.request(http.MethodDelete, "/api/pcs/"+id, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestCreatePCMalformedBody() {
	req, err := http.NewRequest(http.MethodPost, "/api/pcs", strings.NewReader("{not json"))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error": "Failed to create PC"}`, w.Body.String())
}

func (suite *RouterTestSuite) TestInventoryEndpoints() {
	w := suite.request(http.MethodPost, "/api/inventory", map[string]interface{}{
		"component_type":     "GPU",
		"component_name":     "RTX 3070",
		"buy_in_price":       2500,
		"quantity_available": 2,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	id := suite.decode(w)["id"].(string)

	w = suite.request(http.MethodGet, "/api/inventory/low-stock", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var parts []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &parts))
	suite.Require().Len(parts, 1)
	suite.Equal("RTX 3070", parts[0]["component_name"])

	w = suite.request(http.MethodPut, "/api/inventory/"+id, map[string]interface{}{
		"quantity_available": 9,
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(9.0, suite.decode(w)["quantity_available"])

	w = suite.request(http.MethodDelete, "/api/inventory/"+id, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.request(http.MethodDelete, "/api/inventory/"+id, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "Part not found"}`, w.Body.String())
}

func (suite *RouterTestSuite) TestBuyerEndpoints() {
	w := suite.request(http.MethodPost, "/api/buyers", map[string]interface{}{
		"name":  "Kari",
		"email": "kari@example.com",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	buyerID := suite.decode(w)["id"].(string)

	w = suite.request(http.MethodGet, "/api/buyers/"+buyerID+"/purchases", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *RouterTestSuite) TestReportEndpoints() {
	w := suite.request(http.MethodGet, "/api/reports/monthly", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())

	w = suite.request(http.MethodGet, "/api/reports/profit-analysis", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
