package svc

import (
	"log"
	"time"

	"inclfinance/internal/chain"
	"inclfinance/internal/config"
	"inclfinance/internal/event"
	"inclfinance/internal/model"
	"inclfinance/internal/model/memory"
	"inclfinance/internal/reputation"

	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServiceContext struct {
	Config             config.Config
	DB                 *gorm.DB
	UsersDao           model.UsersDao
	TransactionsDao    model.TransactionsDao
	LoansDao           model.LoansDao
	FeedbackDao        model.FeedbackDao
	AnalyticsEventsDao model.AnalyticsEventsDao
	Engine             *reputation.Engine
	Publisher          event.Publisher
	// Resolver is nil when no RPC endpoint is configured.
	Resolver chain.Resolver
	Now      func() time.Time

	closers []func() error
}

func NewServiceContext(c config.Config) *ServiceContext {
	if err := c.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if c.Storage.Driver == config.DriverMemory {
		logx.Info("using in-memory ledger, data is lost on restart")
		return NewMemoryServiceContext(c, memory.NewLedger())
	}

	db, err := initDB(c)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	sc := &ServiceContext{
		Config:             c,
		DB:                 db,
		UsersDao:           model.NewUsersDao(db),
		TransactionsDao:    model.NewTransactionsDao(db),
		LoansDao:           model.NewLoansDao(db),
		FeedbackDao:        model.NewFeedbackDao(db),
		AnalyticsEventsDao: model.NewAnalyticsEventsDao(db),
	}
	sc.closers = append(sc.closers, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
	sc.wire()
	return sc
}

// NewMemoryServiceContext builds a context over an in-process ledger.
func NewMemoryServiceContext(c config.Config, ledger *memory.Ledger) *ServiceContext {
	sc := &ServiceContext{
		Config:             c,
		UsersDao:           ledger.Users(),
		TransactionsDao:    ledger.Transactions(),
		LoansDao:           ledger.Loans(),
		FeedbackDao:        ledger.FeedbackDao(),
		AnalyticsEventsDao: ledger.AnalyticsEvents(),
	}
	sc.wire()
	return sc
}

func (sc *ServiceContext) wire() {
	sc.Now = time.Now
	store := model.NewLedgerStore(sc.UsersDao, sc.TransactionsDao, sc.LoansDao)
	sc.Engine = reputation.NewEngine(store,
		reputation.WithPolicy(loanPolicy(sc.Config.Loan)),
		reputation.WithClock(func() time.Time { return sc.Now() }),
	)

	if len(sc.Config.Kafka.Brokers) > 0 {
		p := event.NewKafkaPublisher(sc.Config.Kafka.Brokers, sc.Config.Kafka.Topic)
		sc.Publisher = p
		logx.Infof("analytics events go to kafka topic %s", sc.Config.Kafka.Topic)
	} else {
		sc.Publisher = event.NewLogPublisher()
	}
	sc.closers = append(sc.closers, sc.Publisher.Close)

	if sc.Config.Chain.RpcUrl != "" {
		r, err := chain.Dial(sc.Config.Chain.RpcUrl)
		if err != nil {
			// 回执查询是可选功能，连不上就按客户端提交的状态记账
			logx.Errorf("receipt resolver disabled: %v", err)
			return
		}
		sc.Resolver = r
		sc.closers = append(sc.closers, func() error {
			r.Close()
			return nil
		})
	}
}

// Close releases the store, publisher and rpc connections.
func (sc *ServiceContext) Close() {
	for i := len(sc.closers) - 1; i >= 0; i-- {
		if err := sc.closers[i](); err != nil {
			logx.Errorf("close: %v", err)
		}
	}
	sc.closers = nil
}

func loanPolicy(c config.LoanConf) reputation.Policy {
	p := reputation.DefaultPolicy()
	if c.BaseAmount > 0 {
		p.BaseAmount = decimal.NewFromFloat(c.BaseAmount)
	}
	if c.MaxMultiplier > 0 {
		p.MaxMultiplier = decimal.NewFromFloat(c.MaxMultiplier)
	}
	return p
}

func initDB(c config.Config) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(c.Postgres.DSN), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(c.Postgres.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.Postgres.MaxOpenConns)

	if err := db.AutoMigrate(model.Tables()...); err != nil {
		return nil, err
	}

	return db, nil
}
