package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/instacotiza/cotiza/internal/config"
	"github.com/instacotiza/cotiza/internal/export"
	"github.com/instacotiza/cotiza/internal/logger"
	"github.com/instacotiza/cotiza/internal/observability"
	"github.com/instacotiza/cotiza/internal/quotation"
	"github.com/instacotiza/cotiza/internal/server"
	"github.com/instacotiza/cotiza/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,

		// Functional domains
		quotation.Module,
		export.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
