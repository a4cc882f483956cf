package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ericks0nmartinez/burger/cmd"
	httpadapter "github.com/ericks0nmartinez/burger/internal/adapters/in/http"
	"github.com/ericks0nmartinez/burger/internal/adapters/out/kafka"
	"github.com/ericks0nmartinez/burger/internal/adapters/out/postgres/orderrepo"
	"github.com/ericks0nmartinez/burger/internal/adapters/out/postgres/productrepo"
	"github.com/ericks0nmartinez/burger/internal/adapters/out/postgres/settingsrepo"
	"github.com/ericks0nmartinez/burger/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	publisher := createPublisher(configs, logger)
	defer publisher.Close()

	root := cmd.NewCompositionRoot(gormDB, publisher, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:       goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderTopic: goDotEnvVariable("KAFKA_ORDER_TOPIC"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&productrepo.ProductDTO{},
		&settingsrepo.SettingsDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	return gormDB
}

// createPublisher builds the Kafka publisher when a broker is configured and
// falls back to the logging publisher otherwise, so local runs need no broker.
func createPublisher(configs cmd.Config, logger *slog.Logger) ports.EventPublisher {
	if configs.KafkaHost == "" {
		return kafka.NewLogPublisher(logger)
	}

	publisher, err := kafka.NewPublisher([]string{configs.KafkaHost}, configs.KafkaOrderTopic)
	if err != nil {
		log.Fatalf("Failed to create Kafka publisher: %v", err)
	}
	return publisher
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	httpadapter.RegisterMetrics(e)

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:           root.CreateCreateOrderCommandHandler(),
		TransitionOrderStatus: root.CreateTransitionOrderStatusCommandHandler(),
		MarkOrderPaid:         root.CreateMarkOrderPaidCommandHandler(),
		UpdateOrder:           root.CreateUpdateOrderCommandHandler(),
		DeleteOrder:           root.CreateDeleteOrderCommandHandler(),
		CreateProduct:         root.CreateCreateProductCommandHandler(),
		UpdateProduct:         root.CreateUpdateProductCommandHandler(),
		DeleteProduct:         root.CreateDeleteProductCommandHandler(),
		UpdateSettings:        root.CreateUpdateSettingsCommandHandler(),

		GetAllOrders:          root.CreateGetAllOrdersQueryHandler(),
		GetOrder:              root.CreateGetOrderQueryHandler(),
		GetDeliveryOrders:     root.CreateGetDeliveryOrdersQueryHandler(),
		GetCashRegisterReport: root.CreateGetCashRegisterReportQueryHandler(),
		GetProducts:           root.CreateGetProductsQueryHandler(),
		GetProduct:            root.CreateGetProductQueryHandler(),
		GetSettings:           root.CreateGetSettingsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
