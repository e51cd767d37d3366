package services

import "errors"

// Общие ошибки сервисного слоя, используемые и при маппинге в HTTP.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTeamNotFound    = errors.New("team not found")

	// Ошибки валидации
	ErrTeamNameRequired = errors.New("team name is required")
	ErrInvalidFormat    = errors.New("invalid format: expected 'tournament' or 'playoff'")
	ErrInvalidSeeding   = errors.New("invalid seeding: expected 'spread' or 'sequential'")

	// Конфликты
	ErrTeamNameConflict = errors.New("team name is already in use")

	// Ошибки состояния сессии
	ErrFixtureNotCreated = errors.New("fixture has not been created yet")
	ErrWrongFormat       = errors.New("operation is not available for the session format")

	ErrExportDisabled = errors.New("snapshot export is not configured")
	ErrExportFailed   = errors.New("failed to export snapshot")
)
