package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/chayal-connect/matchmaker/internal/config"
	"github.com/chayal-connect/matchmaker/pkg/db"
	"github.com/chayal-connect/matchmaker/pkg/geo"
	"github.com/chayal-connect/matchmaker/pkg/lang"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg       *config.Config
	Database  db.Database
	Geo       *geo.Resolver
	Languages *lang.Registry
	Logger    *zap.Logger
	Ctx       context.Context
	Env       string
}
