package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"Blogicum/internal/model"
	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/mysql"
	"Blogicum/internal/repository/redis"
	"Blogicum/internal/router"
	"Blogicum/internal/service"

	"github.com/joho/godotenv"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// .env 不存在也不报错，容器里直接用环境变量
	_ = godotenv.Load()

	if err := pkg.InitLogger(envOr("LOG_LEVEL", "info")); err != nil {
		panic(err)
	}

	dsn := envOr("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/blogicum?charset=utf8mb4&parseTime=True")
	if err := mysql.InitDB(dsn); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(envOr("REDIS_ADDR", "127.0.0.1:6379"), os.Getenv("REDIS_PASSWORD"), 0); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Location{},
		&model.Post{},
		&model.Comment{},
		&model.BlogOutbox{},
	)

	// outbox 投递：配了 kafka 就发 kafka，否则只打日志
	sender := service.LogSender
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		w := pkg.NewEventWriter(strings.Split(brokers, ","), envOr("KAFKA_TOPIC", "blog.events"))
		defer w.Close()
		sender = service.KafkaSender(w)
	}
	relayer := service.NewOutboxRelayer(sender)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go relayer.Run(ctx)

	smtpPort, _ := strconv.Atoi(envOr("SMTP_PORT", "587"))
	emailCfg := pkg.SMTPConfig{
		Host:     envOr("SMTP_HOST", "smtp.example.com"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     envOr("SMTP_FROM", "NoReply <no-reply@example.com>"),
	}

	// Gin
	r := router.InitRouter(emailCfg, envOr("TEMPLATE_GLOB", "web/templates/*.html"))
	if err := r.Run(envOr("HTTP_ADDR", ":8080")); err != nil {
		pkg.Logger.Errorw("server stopped", "err", err)
	}
}
