package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraGw "app/internal/infra/gateway"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envがあれば読む（無ければ環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(&model.CartSlot{}); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	slotRepo := infraRepo.NewCartSlotGormRepository(gormDB)

	//リモートバックエンドのゲートウェイ生成
	client := infraGw.NewClient(cfg.BackendBaseURL)
	orderGw := infraGw.NewOrderHTTPGateway(client)
	itemGw := infraGw.NewOrderItemHTTPGateway(client)
	paymentGw := infraGw.NewPaymentHTTPGateway(client)
	productGw := infraGw.NewProductHTTPGateway(client)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(slotRepo)
	checkoutUC := usecase.NewCheckoutUsecase(slotRepo, orderGw, itemGw)
	paymentUC := usecase.NewPaymentUsecase(checkoutUC, slotRepo, paymentGw)
	productUC := usecase.NewProductUsecase(productGw)
	orderUC := usecase.NewOrderUsecase(orderGw, itemGw)

	//Handler生成
	h := server.Handlers{
		Product:  handler.NewProductHandler(productUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC, paymentUC),
		Order:    handler.NewOrderHandler(orderUC),
	}

	//Server起動
	addr := ":" + cfg.Port
	if cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	if err := server.Start(addr, cfg, h); err != nil {
		panic(err)
	}
}
