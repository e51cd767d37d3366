package handlers

import (
	"net/http"

	"github.com/Dosada05/fixture-system/services"
)

type submitResultInput struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

type pickWinnerInput struct {
	TeamID string `json:"team_id"`
}

type MatchHandler struct {
	fixtureService services.FixtureService
}

func NewMatchHandler(fs services.FixtureService) *MatchHandler {
	return &MatchHandler{fixtureService: fs}
}

// GetLeague godoc
// @Summary Расписание и таблица кругового турнира
// @Tags league
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Failure 409 {object} map[string]string "Расписание не построено или формат playoff"
// @Router /sessions/{sessionID}/league [get]
func (h *MatchHandler) GetLeague(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, err := h.fixtureService.GetLeague(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"league": league}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitResult godoc
// @Summary Внести или исправить счёт матча
// @Tags league
// @Description Повторная отправка заменяет прежний счёт. Возвращает пересчитанную таблицу.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param matchID path string true "Match ID"
// @Param input body submitResultInput true "Счёт"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия или матч не найдены"
// @Failure 409 {object} map[string]string "Расписание не построено или формат playoff"
// @Failure 422 {object} map[string]string "Некорректный счёт"
// @Router /sessions/{sessionID}/league/matches/{matchID}/result [put]
func (h *MatchHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input submitResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	validationErrors := make(map[string]string)
	if input.HomeScore == nil {
		validationErrors["home_score"] = "must be provided"
	}
	if input.AwayScore == nil {
		validationErrors["away_score"] = "must be provided"
	}
	if len(validationErrors) > 0 {
		failedValidationResponse(w, r, validationErrors)
		return
	}

	league, err := h.fixtureService.SubmitResult(r.Context(), sessionID, matchID, *input.HomeScore, *input.AwayScore)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"league": league}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPlayoff godoc
// @Summary Сетка плей-офф
// @Tags playoff
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Failure 409 {object} map[string]string "Сетка не построена или формат tournament"
// @Router /sessions/{sessionID}/playoff [get]
func (h *MatchHandler) GetPlayoff(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	playoff, err := h.fixtureService.GetPlayoff(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"playoff": playoff}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PickWinner godoc
// @Summary Выбрать победителя матча сетки
// @Tags playoff
// @Description Победитель проходит в следующий раунд; зависящие от прежнего выбора решения сбрасываются.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param matchID path string true "Match ID"
// @Param input body pickWinnerInput true "Победитель"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сессия или матч не найдены"
// @Failure 409 {object} map[string]string "Сетка не построена или формат tournament"
// @Failure 422 {object} map[string]string "Команда не играет в матче, соперник ещё не определён или выбран BYE"
// @Router /sessions/{sessionID}/playoff/matches/{matchID}/winner [put]
func (h *MatchHandler) PickWinner(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input pickWinnerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.TeamID == "" {
		failedValidationResponse(w, r, map[string]string{"team_id": "must be provided"})
		return
	}

	playoff, err := h.fixtureService.PickWinner(r.Context(), sessionID, matchID, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"playoff": playoff}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
