package di

import (
	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands/bus"
	"github.com/NicollasRezende/flow-management-app/application/ports"
	querybus "github.com/NicollasRezende/flow-management-app/application/queries/bus"
	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/infrastructure/config"
	"github.com/NicollasRezende/flow-management-app/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	FlowRepo    ports.FlowRepository
	Publisher   ports.EventPublisher
	FlowService *services.FlowService
	CommandBus  *bus.CommandBus
	QueryBus    *querybus.QueryBus
	Metrics     *observability.Metrics
	Tracer      *observability.Tracer
}
