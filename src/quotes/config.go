package quotes

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL string        `envconfig:"QUOTE_BASE_URL" default:"https://query1.finance.yahoo.com"`
	Timeout time.Duration `envconfig:"QUOTE_TIMEOUT" default:"10s"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
