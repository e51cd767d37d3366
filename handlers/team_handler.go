package handlers

import (
	"net/http"

	"github.com/Dosada05/fixture-system/services"
)

type teamNameInput struct {
	Name string `json:"name"`
}

type TeamHandler struct {
	fixtureService services.FixtureService
}

func NewTeamHandler(fs services.FixtureService) *TeamHandler {
	return &TeamHandler{fixtureService: fs}
}

// ListTeams godoc
// @Summary Список команд сессии
// @Tags teams
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID}/teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.fixtureService.ListTeams(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AddTeam godoc
// @Summary Добавить команду
// @Tags teams
// @Description Имя уникально без учёта регистра. Активное расписание перестраивается.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param input body teamNameInput true "Имя команды"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Пустое имя"
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Failure 409 {object} map[string]string "Имя занято"
// @Router /sessions/{sessionID}/teams [post]
func (h *TeamHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input teamNameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.fixtureService.AddTeam(r.Context(), sessionID, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RenameTeam godoc
// @Summary Переименовать команду
// @Tags teams
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param teamID path string true "Team ID"
// @Param input body teamNameInput true "Новое имя"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Пустое имя"
// @Failure 404 {object} map[string]string "Сессия или команда не найдена"
// @Failure 409 {object} map[string]string "Имя занято"
// @Router /sessions/{sessionID}/teams/{teamID} [put]
func (h *TeamHandler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input teamNameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.fixtureService.RenameTeam(r.Context(), sessionID, teamID, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RemoveTeam godoc
// @Summary Удалить команду
// @Tags teams
// @Description При активном расписании оно перестраивается; если останется меньше двух команд, удаление отклоняется.
// @Param sessionID path string true "Session ID"
// @Param teamID path string true "Team ID"
// @Success 204 "Удалено"
// @Failure 404 {object} map[string]string "Сессия или команда не найдена"
// @Failure 422 {object} map[string]string "Перестройка невозможна"
// @Router /sessions/{sessionID}/teams/{teamID} [delete]
func (h *TeamHandler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.fixtureService.RemoveTeam(r.Context(), sessionID, teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
