package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
)

type Config struct {
	PaymentsPath string `env:"PAYMENTS_PATH"`
	ProductsPath string `env:"PRODUCTS_PATH"`
	OrdersPath   string `env:"ORDERS_PATH"`
	InputFormat  string `env:"INPUT_FORMAT"`
	OutputFormat string `env:"OUTPUT_FORMAT"`
	LogLevel     string `env:"LOG_LEVEL"`
}

func InitConfig() Config {
	// .env is optional
	_ = godotenv.Load()

	config, err := ParseConfig(os.Args[0], os.Args[1:])
	if err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return config
}

// ParseConfig reads flags first, environment variables override them.
func ParseConfig(name string, args []string) (config Config, err error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&config.PaymentsPath, "payments", "", "path to payments file (json or yaml)")
	flags.StringVar(&config.ProductsPath, "products", "", "path to products file (json or yaml)")
	flags.StringVar(&config.OrdersPath, "orders", "", "path to orders file (json or yaml)")
	flags.StringVar(&config.InputFormat, "i", "auto", "input format: auto, json or yaml")
	flags.StringVar(&config.OutputFormat, "f", "text", "output format: text or json")
	flags.StringVar(&config.LogLevel, "l", "info", "log level")

	err = flags.Parse(args)
	if err != nil {
		return Config{}, err
	}

	err = env.Parse(&config)
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Sources() entity.Sources {
	return entity.Sources{
		Payments: c.PaymentsPath,
		Products: c.ProductsPath,
		Orders:   c.OrdersPath,
	}
}
