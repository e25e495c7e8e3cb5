package config

import (
	"errors"
	"time"

	"github.com/zeromicro/go-zero/rest"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type LoanConf struct {
	InterestRate  float64       `json:",default=5"`
	Period        time.Duration `json:",default=720h"`
	BaseAmount    float64       `json:",default=200"`
	MaxMultiplier float64       `json:",default=2"`
}

type KafkaConf struct {
	Brokers []string `json:",optional"`
	Topic   string   `json:",default=incl-analytics"`
}

type Config struct {
	rest.RestConf
	Storage struct {
		Driver string `json:",default=postgres,options=postgres|memory"`
	}
	Postgres struct {
		DSN          string `json:",optional"`
		MaxIdleConns int    `json:",default=10"`
		MaxOpenConns int    `json:",default=100"`
	}
	Cors struct {
		Origins []string `json:",optional"`
	}
	Loan        LoanConf
	Leaderboard struct {
		Size int `json:",default=10"`
	}
	// 打开后钱包地址必须是 EVM 地址，并统一成 checksum 格式
	Wallet struct {
		RequireHexAddress bool `json:",optional"`
	}
	Kafka KafkaConf
	Chain struct {
		RpcUrl string `json:",optional"`
	}
}

// CorsOrigins 未配置时允许所有来源
func (c Config) CorsOrigins() []string {
	if len(c.Cors.Origins) == 0 {
		return []string{"*"}
	}
	return c.Cors.Origins
}

// Validate checks settings that depend on each other.
func (c Config) Validate() error {
	if c.Storage.Driver != DriverMemory && c.Postgres.DSN == "" {
		return errors.New("Postgres.DSN is required when Storage.Driver is postgres")
	}
	return nil
}
