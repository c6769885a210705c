// internal/services/buyer_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/buildflip/pc-inventory-backend/internal/models"
)

type BuyerServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	service   *BuyerService
	pcService *PCService
}

func (suite *BuyerServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewBuyerService(suite.db)
	suite.pcService = NewPCService(suite.db)
}

func (suite *BuyerServiceTestSuite) TestCreateBuyer() {
	buyer, err := suite.service.CreateBuyer(&CreateBuyerRequest{
		Name:  "Ola Nordmann",
		Email: strPtr("ola@example.com"),
		Phone: strPtr("+47 912 34 567"),
	})
	suite.Require().NoError(err)

	suite.Equal("Ola Nordmann", buyer.Name)
	suite.False(buyer.CreatedAt.IsZero())
}

func (suite *BuyerServiceTestSuite) TestCreateBuyerRequiresName() {
	_, err := suite.service.CreateBuyer(&CreateBuyerRequest{Email: strPtr("anon@example.com")})
	suite.Error(err)
}

func (suite *BuyerServiceTestSuite) TestListBuyersOrderedByName() {
	for _, name := range []string{"Kari", "Anders", "Mette"} {
		_, err := suite.service.CreateBuyer(&CreateBuyerRequest{Name: name})
		suite.Require().NoError(err)
	}

	buyers, err := suite.service.ListBuyers()
	suite.Require().NoError(err)

	suite.Require().Len(buyers, 3)
	suite.Equal("Anders", buyers[0].Name)
	suite.Equal("Kari", buyers[1].Name)
	suite.Equal("Mette", buyers[2].Name)
}

func (suite *BuyerServiceTestSuite) TestBuyerPurchases() {
	buyer, err := suite.service.CreateBuyer(&CreateBuyerRequest{Name: "Kari"})
	suite.Require().NoError(err)

	older, err := suite.pcService.CreatePC(&CreatePCRequest{PCName: "Older Sale"})
	suite.Require().NoError(err)
	newer, err := suite.pcService.CreatePC(&CreatePCRequest{PCName: "Newer Sale"})
	suite.Require().NoError(err)
	unsold, err := suite.pcService.CreatePC(&CreatePCRequest{PCName: "Still Listed"})
	suite.Require().NoError(err)

	olderDate := models.NewDate(2024, time.January, 10)
	_, err = suite.pcService.SellPC(older.ID, &SellPCRequest{
		SaleDate:        &olderDate,
		ActualSalePrice: floatPtr(4000),
		BuyerID:         &buyer.ID,
	})
	suite.Require().NoError(err)

	newerDate := models.NewDate(2024, time.March, 5)
	_, err = suite.pcService.SellPC(newer.ID, &SellPCRequest{
		SaleDate:        &newerDate,
		ActualSalePrice: floatPtr(5500),
		BuyerID:         &buyer.ID,
	})
	suite.Require().NoError(err)

	// A buyer reference without a sale date means the PC is unsold; it
	// must never show up in the purchase history.
	suite.Require().NoError(suite.db.Model(&models.PC{}).
		Where("id = ?", unsold.ID).
		Update("buyer_id", buyer.ID).Error)

	purchases, err := suite.service.GetBuyerPurchases(buyer.ID)
	suite.Require().NoError(err)

	suite.Require().Len(purchases, 2)
	suite.Equal("Newer Sale", purchases[0].PCName)
	suite.Equal("Older Sale", purchases[1].PCName)
}

func (suite *BuyerServiceTestSuite) TestBuyerWithoutPurchases() {
	buyer, err := suite.service.CreateBuyer(&CreateBuyerRequest{Name: "Window Shopper"})
	suite.Require().NoError(err)

	purchases, err := suite.service.GetBuyerPurchases(buyer.ID)
	suite.Require().NoError(err)
	suite.Empty(purchases)
}

func TestBuyerServiceSuite(t *testing.T) {
	suite.Run(t, new(BuyerServiceTestSuite))
}
