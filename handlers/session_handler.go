package handlers

import (
	"net/http"

	"github.com/Dosada05/fixture-system/services"
)

type SessionHandler struct {
	fixtureService services.FixtureService
}

func NewSessionHandler(fs services.FixtureService) *SessionHandler {
	return &SessionHandler{fixtureService: fs}
}

// CreateSession godoc
// @Summary Создать сессию
// @Tags sessions
// @Description Новая сессия: пустой список команд, формат tournament, посев spread.
// @Produce json
// @Success 201 {object} map[string]interface{} "Сессия создана"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.fixtureService.CreateSession(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetSession godoc
// @Summary Получить сессию
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.fixtureService.GetSession(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteSession godoc
// @Summary Удалить сессию
// @Tags sessions
// @Param sessionID path string true "Session ID"
// @Success 204 "Удалено"
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID} [delete]
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.fixtureService.DeleteSession(r.Context(), sessionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetFormat godoc
// @Summary Выбрать формат
// @Tags sessions
// @Description tournament (круговой турнир) или playoff (сетка на выбывание). Активная сетка перестраивается.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param input body services.SetFormatInput true "Формат и посев"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Неизвестный формат или посев"
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID}/format [put]
func (h *SessionHandler) SetFormat(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.SetFormatInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.fixtureService.SetFormat(r.Context(), sessionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateFixture godoc
// @Summary Построить расписание или сетку
// @Tags sessions
// @Description Полная перестройка из текущего списка команд. Нужно минимум две команды.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param input body services.CreateFixtureInput false "Перемешать команды перед построением"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Failure 422 {object} map[string]string "Меньше двух команд"
// @Router /sessions/{sessionID}/fixture [post]
func (h *SessionHandler) CreateFixture(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateFixtureInput
	if err := readOptionalJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.fixtureService.CreateFixture(r.Context(), sessionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetFixture godoc
// @Summary Сбросить расписание
// @Tags sessions
// @Description Команды остаются, расписание, таблица и сетка удаляются.
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID}/fixture [delete]
func (h *SessionHandler) ResetFixture(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.fixtureService.ResetFixture(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
