package main

import (
	"context"
	"fmt"
	"os"

	"github.com/VishnuPunati/product-catalog-service/cmd"
	httpadapter "github.com/VishnuPunati/product-catalog-service/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	if err = app.MigrateDB(); err != nil {
		log.Fatalf("migrating database: %v", err)
	}

	if configs.SeedDemoData {
		err = cmd.SeedDemoData(context.Background(), app.CreateCategoryService(), app.CreateProductService())
		if err != nil {
			log.Fatalf("seeding demo data: %v", err)
		}
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(httpadapter.MetricsMiddleware())

	httpadapter.RegisterMetricsRoute(e)
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
