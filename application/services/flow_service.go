// Package services hosts the application services coordinating domain logic,
// persistence and events.
package services

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/ports"
	"github.com/NicollasRezende/flow-management-app/domain/events"
	"github.com/NicollasRezende/flow-management-app/domain/flow"
	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
	"github.com/NicollasRezende/flow-management-app/pkg/observability"
	"github.com/NicollasRezende/flow-management-app/pkg/utils"
)

// FlowService owns the editing session for the flow document. It loads the
// persisted tree into a canvas, accumulates edits, and persists snapshots.
// At most one save runs at a time.
type FlowService struct {
	repo      ports.FlowRepository
	publisher ports.EventPublisher
	metrics   *observability.Metrics
	logger    *zap.Logger
	session   *flow.Session
	saving    atomic.Bool
}

// NewFlowService creates the service with an empty session. Callers load a
// document before serving traffic.
func NewFlowService(
	repo ports.FlowRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *FlowService {
	return &FlowService{
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		session:   flow.NewSession(),
	}
}

// Load fetches the persisted tree and projects it onto the canvas. When no
// document exists yet the default starter flow is used instead; any other
// storage failure leaves the current session untouched.
func (s *FlowService) Load(ctx context.Context) (flow.Graph, error) {
	tree, err := s.repo.Load(ctx)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			s.logger.Error("failed to load flow document", zap.Error(err))
			return flow.Graph{}, err
		}
		s.logger.Info("no flow document found, starting from the default flow")
		tree = menu.DefaultTree()
	}

	s.session.Load(tree)
	return s.session.Graph(), nil
}

// Save persists a snapshot of the canvas taken at invocation. A second save
// arriving while one is in flight is refused with a conflict. On failure the
// session keeps its state and stays dirty so the save can be retried.
func (s *FlowService) Save(ctx context.Context) error {
	if !s.saving.CompareAndSwap(false, true) {
		return apperrors.NewConflictError("a save is already in progress")
	}
	defer s.saving.Store(false)

	tree, rev := s.session.Snapshot()
	if err := s.repo.Save(ctx, tree); err != nil {
		s.logger.Error("failed to persist flow document", zap.Error(err))
		return apperrors.Wrap(err, "save flow")
	}

	s.session.MarkSavedAt(rev)
	s.metrics.RecordGauge(ctx, "FlowMenuCount", float64(len(tree.Menus)))
	s.publish(ctx, events.NewFlowSaved(len(tree.Menus)))
	s.logger.Info("flow document saved", zap.Int("menus", len(tree.Menus)))
	return nil
}

// Import replaces the session with an uploaded document. The imported state
// is dirty until saved.
func (s *FlowService) Import(ctx context.Context, document []byte) (flow.Graph, error) {
	tree, err := menu.DecodeTree(document)
	if err != nil {
		return flow.Graph{}, err
	}

	s.session.Load(tree)
	s.session.MarkDirty()
	s.publish(ctx, events.NewFlowImported(len(tree.Menus)))
	s.logger.Info("flow document imported", zap.Int("menus", len(tree.Menus)))
	return s.session.Graph(), nil
}

// ExportArtifact is a downloadable rendition of the current canvas state.
type ExportArtifact struct {
	Filename string
	Content  []byte
}

// Export reconciles the canvas and renders it as a pretty-printed JSON
// document named after today's date.
func (s *FlowService) Export(ctx context.Context) (ExportArtifact, error) {
	tree := s.session.BuildTree()
	content, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return ExportArtifact{}, apperrors.NewInternalError("failed to encode flow document").WithCause(err)
	}
	return ExportArtifact{
		Filename: "menu-flow-" + utils.DateStamp() + ".json",
		Content:  content,
	}, nil
}

// Validate reconciles the canvas and reports advisory issues.
func (s *FlowService) Validate(ctx context.Context) []menu.Issue {
	return menu.ValidateTree(s.session.BuildTree())
}

// Graph returns the current canvas state.
func (s *FlowService) Graph() flow.Graph {
	return s.session.Graph()
}

// Dirty reports whether unsaved edits exist.
func (s *FlowService) Dirty() bool {
	return s.session.Dirty()
}

// AddMenu places a new menu on the canvas.
func (s *FlowService) AddMenu(ctx context.Context, id, title string, menuType menu.MenuType) (flow.Node, error) {
	node, err := s.session.AddNode(id, title, menuType)
	if err != nil {
		return flow.Node{}, err
	}
	s.metrics.IncrementCounter(ctx, "MenusAdded")
	s.publish(ctx, events.NewMenuAdded(id, string(menuType)))
	return node, nil
}

// UpdateMenu applies a patch to a menu on the canvas.
func (s *FlowService) UpdateMenu(ctx context.Context, id string, patch flow.NodePatch) (flow.Node, error) {
	return s.session.UpdateNode(id, patch)
}

// Connect draws a navigation edge between two menus.
func (s *FlowService) Connect(ctx context.Context, source, target, label string) (flow.Edge, error) {
	return s.session.Connect(source, target, label)
}

// Move records a new canvas position for a menu.
func (s *FlowService) Move(ctx context.Context, id string, x, y float64) error {
	return s.session.MoveNode(id, flow.Position{X: x, Y: y})
}

// Delete removes a menu, cascading edges and references.
func (s *FlowService) Delete(ctx context.Context, id string) error {
	if err := s.session.DeleteNode(id); err != nil {
		return err
	}
	s.metrics.IncrementCounter(ctx, "MenusDeleted")
	s.publish(ctx, events.NewMenuDeleted(id))
	return nil
}

// publish delivers an event, logging failures instead of propagating them.
func (s *FlowService) publish(ctx context.Context, event events.DomainEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
	}
}
