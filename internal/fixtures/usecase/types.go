package usecase

// Request DTOs - Centralized type definitions

// Lifecycle operations
type LoadFixtureRequest struct {
	Database string `json:"database" validate:"required"`
	Fixture  string `json:"fixture" validate:"required"`
}

type UnloadFixtureRequest struct {
	Database string `json:"database" validate:"required"`
	Fixture  string `json:"fixture" validate:"required"`
}

// Destructive operations
type DropCollectionRequest struct {
	Database   string `json:"database" validate:"required"`
	Collection string `json:"collection" validate:"required"`
}

type DropDatabaseRequest struct {
	Database string `json:"database" validate:"required"`
}

// Inspection operations
type GetCollectionRequest struct {
	Database   string `json:"database" validate:"required"`
	Collection string `json:"collection" validate:"required"`
}
