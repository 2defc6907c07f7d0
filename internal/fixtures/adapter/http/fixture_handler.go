package http

import (
	"fixturehub/internal/fixtures/usecase"
	apperrors "fixturehub/internal/shared/errors"
	"fixturehub/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// HTTPHandler handles the fixture control API endpoints
type HTTPHandler struct {
	FixtureUC usecase.FixtureUsecaseInterface
	Log       logger.Logger
}

// NewFixtureHTTPHandler creates a new HTTPHandler
func NewFixtureHTTPHandler(fixtureUC usecase.FixtureUsecaseInterface, log logger.Logger) *HTTPHandler {
	return &HTTPHandler{
		FixtureUC: fixtureUC,
		Log:       log,
	}
}

// RegisterRoutes registers all fixture API routes at the router root
func (h *HTTPHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/is-alive", h.IsAlive)
	router.Get("/load-fixture", h.LoadFixture)
	router.Get("/unload-fixture", h.UnloadFixture)
	router.Get("/drop-collection", h.DropCollection)
	router.Get("/drop-database", h.DropDatabase)
	router.Get("/get-collection", h.GetCollection)
	router.Get("/get-fixtures", h.GetFixtures)
}

// missingParameter writes the 400 response for an absent required query
// parameter. Callers must return right after.
func (h *HTTPHandler) missingParameter(c *fiber.Ctx, name string) error {
	h.Log.Warn("Missing required query parameter", "parameter", name, "path", c.Path())
	return c.Status(fiber.StatusBadRequest).SendString(apperrors.NewMissingParameterError(name).Message)
}

// IsAlive reports service liveness
func (h *HTTPHandler) IsAlive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// Fixture lifecycle handlers implementation
func (h *HTTPHandler) LoadFixture(c *fiber.Ctx) error {
	db := c.Query("db")
	if db == "" {
		return h.missingParameter(c, "db")
	}
	fix := c.Query("fix")
	if fix == "" {
		return h.missingParameter(c, "fix")
	}

	log := h.Log.WithContext(c.UserContext())
	log.Debug("Loading fixture via HTTP", "database", db, "fixture", fix)

	req := usecase.LoadFixtureRequest{Database: db, Fixture: fix}
	if err := h.FixtureUC.LoadFixture(c.UserContext(), req); err != nil {
		log.Error("Failed to load fixture", "database", db, "fixture", fix, "error", err)
		return c.Status(apperrors.HTTPStatus(err, fiber.StatusBadRequest)).SendString("failed to load fixture")
	}

	log.Info("Fixture loaded via HTTP", "database", db, "fixture", fix)
	return c.SendString("")
}

func (h *HTTPHandler) UnloadFixture(c *fiber.Ctx) error {
	db := c.Query("db")
	if db == "" {
		return h.missingParameter(c, "db")
	}
	fix := c.Query("fix")
	if fix == "" {
		return h.missingParameter(c, "fix")
	}

	log := h.Log.WithContext(c.UserContext())
	log.Debug("Unloading fixture via HTTP", "database", db, "fixture", fix)

	req := usecase.UnloadFixtureRequest{Database: db, Fixture: fix}
	if err := h.FixtureUC.UnloadFixture(c.UserContext(), req); err != nil {
		log.Error("Failed to unload fixture", "database", db, "fixture", fix, "error", err)
		return c.Status(apperrors.HTTPStatus(err, fiber.StatusBadRequest)).SendString("failed to unload fixture")
	}

	log.Info("Fixture unloaded via HTTP", "database", db, "fixture", fix)
	return c.SendString("")
}

// Destructive operation handlers implementation
func (h *HTTPHandler) DropCollection(c *fiber.Ctx) error {
	db := c.Query("db")
	if db == "" {
		return h.missingParameter(c, "db")
	}
	col := c.Query("col")
	if col == "" {
		return h.missingParameter(c, "col")
	}

	log := h.Log.WithContext(c.UserContext())
	log.Debug("Dropping collection via HTTP", "database", db, "collection", col)

	req := usecase.DropCollectionRequest{Database: db, Collection: col}
	if err := h.FixtureUC.DropCollection(c.UserContext(), req); err != nil {
		log.Error("Failed to drop collection", "database", db, "collection", col, "error", err)
		return c.Status(apperrors.HTTPStatus(err, fiber.StatusBadRequest)).SendString("failed to drop collection")
	}

	return c.SendString("")
}

func (h *HTTPHandler) DropDatabase(c *fiber.Ctx) error {
	db := c.Query("db")
	if db == "" {
		return h.missingParameter(c, "db")
	}

	log := h.Log.WithContext(c.UserContext())
	log.Debug("Dropping database via HTTP", "database", db)

	req := usecase.DropDatabaseRequest{Database: db}
	if err := h.FixtureUC.DropDatabase(c.UserContext(), req); err != nil {
		log.Error("Failed to drop database", "database", db, "error", err)
		return c.Status(apperrors.HTTPStatus(err, fiber.StatusBadRequest)).SendString("failed to drop database")
	}

	return c.SendString("")
}

// Inspection handlers implementation
func (h *HTTPHandler) GetCollection(c *fiber.Ctx) error {
	db := c.Query("db")
	if db == "" {
		return h.missingParameter(c, "db")
	}
	col := c.Query("col")
	if col == "" {
		return h.missingParameter(c, "col")
	}

	log := h.Log.WithContext(c.UserContext())
	log.Debug("Reading collection via HTTP", "database", db, "collection", col)

	req := usecase.GetCollectionRequest{Database: db, Collection: col}
	docs, err := h.FixtureUC.GetCollection(c.UserContext(), req)
	if err != nil {
		log.Error("Failed to read collection", "database", db, "collection", col, "error", err)
		return c.Status(apperrors.HTTPStatus(err, fiber.StatusBadRequest)).SendString("failed to read collection")
	}

	log.Debug("Collection read via HTTP", "database", db, "collection", col, "count", len(docs))
	return c.JSON(docs)
}

func (h *HTTPHandler) GetFixtures(c *fiber.Ctx) error {
	log := h.Log.WithContext(c.UserContext())
	log.Debug("Listing fixtures via HTTP")

	names, err := h.FixtureUC.ListFixtures(c.UserContext())
	if err != nil {
		log.Error("Failed to list fixtures", "error", err)
		return c.Status(apperrors.HTTPStatus(err, fiber.StatusInternalServerError)).SendString("failed to list fixtures")
	}

	log.Debug("Fixtures listed via HTTP", "count", len(names))
	return c.JSON(names)
}
