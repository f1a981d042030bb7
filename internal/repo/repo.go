package repo

import (
	goldrepo "github.com/ashkanv/shopdesk/internal/repo/gold-repo"
	paymentrepo "github.com/ashkanv/shopdesk/internal/repo/payment-repo"
	sellerrepo "github.com/ashkanv/shopdesk/internal/repo/seller-repo"
	"github.com/ashkanv/shopdesk/internal/service/goldservice"
	"github.com/ashkanv/shopdesk/internal/service/paymentservice"
	"github.com/ashkanv/shopdesk/internal/service/sellerservice"
	"github.com/ashkanv/shopdesk/internal/sheetapi"
)

type Repositories struct {
	PaymentRepo paymentservice.Repo
	GoldRepo    goldservice.Repo
	SellerRepo  sellerservice.Repo
}

func New(rows sheetapi.RowStore) *Repositories {
	return &Repositories{
		PaymentRepo: paymentrepo.New(rows),
		GoldRepo:    goldrepo.New(rows),
		SellerRepo:  sellerrepo.New(rows),
	}
}
