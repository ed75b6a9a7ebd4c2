package bootstrap

import (
	"context"
	"time"

	"guestsign/app/repositories"
	"guestsign/app/services"
	"guestsign/pkg/config"
	"guestsign/pkg/database"
	"guestsign/pkg/logger"
	"guestsign/pkg/mq"
	"guestsign/pkg/redis"
	"guestsign/pkg/session"
	"guestsign/routes"

	"go.uber.org/zap"
)

// SetupServices 组装业务服务，返回路由依赖和关闭时的清理函数
func SetupServices() (routes.Dependencies, func()) {
	events := repositories.NewEventRepository(database.DB)
	guests := repositories.NewGuestRepository(database.DB)
	users := repositories.NewUserRepository(database.DB)

	sessions := session.NewManager(setupSessionStore(), time.Duration(config.GetInt("session.lifetime", 120))*time.Minute)
	authService := services.NewAuthService(users, sessions)

	notifier, cleanup := setupNotifier()
	checkin := services.NewCheckinService(events, guests, notifier)

	setupAdmin(authService)

	return routes.Dependencies{
		DB:      database.DB,
		Auth:    authService,
		Checkin: checkin,
	}, cleanup
}

func setupSessionStore() session.Store {
	if config.GetString("session.driver") == "redis" && redis.Redis != nil {
		logger.InfoString("Session", "驱动", "redis")
		return session.NewRedisStore(redis.Redis, config.GetString("session.prefix"))
	}
	logger.InfoString("Session", "驱动", "memory")
	return session.NewMemoryStore()
}

// setupNotifier RabbitMQ 不可用时退化为不发送消息
func setupNotifier() (services.Notifier, func()) {
	if !config.GetBool("mq.enabled") {
		return services.NopNotifier{}, func() {}
	}

	publisher, err := mq.NewPublisher(config.GetString("mq.url"), config.GetString("mq.exchange"))
	if err != nil {
		logger.Warn("MQ", zap.String("exchange", config.GetString("mq.exchange")), zap.Error(err))
		return services.NopNotifier{}, func() {}
	}
	logger.InfoString("MQ", "连接", "签到消息发布已启用")

	return services.NewMQNotifier(publisher), func() {
		logger.LogWarnIf(publisher.Close())
	}
}

func setupAdmin(authService *services.AuthService) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := authService.EnsureAdmin(ctx,
		config.GetString("admin.username"),
		config.GetString("admin.email"),
		config.GetString("admin.password"),
	)
	if err != nil {
		logger.ErrorString("Admin", "创建", err.Error())
		return
	}
	if created {
		logger.InfoString("Admin", "创建", "已创建管理员 "+config.GetString("admin.username"))
	}
}
