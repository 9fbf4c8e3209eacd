package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/migrations"
	"github.com/vfg2006/sales-commission-api/internal/config"
)

// Uso: migrate [up|down|status]
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	switch command {
	case "up":
		err = migrations.Up(conn.DB, conn.Driver())
	case "down":
		err = migrations.Down(conn.DB, conn.Driver())
	case "status":
		err = migrations.Status(conn.DB, conn.Driver())
	default:
		logrus.Errorf("Comando desconhecido: %s (use up, down ou status)", command)
		os.Exit(2)
	}

	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações")
	}

	logrus.WithField("command", command).Info("Migrações executadas com sucesso")
}
