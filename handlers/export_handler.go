package handlers

import (
	"net/http"

	"github.com/Dosada05/fixture-system/services"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

// ExportSession godoc
// @Summary Опубликовать снимок сессии
// @Tags sessions
// @Description Загружает JSON-снимок в R2 и возвращает публичную ссылку. Хранится только последний снимок.
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Failure 503 {object} map[string]string "Экспорт не настроен"
// @Router /sessions/{sessionID}/export [post]
func (h *ExportHandler) ExportSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.exportService.Export(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"export": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
