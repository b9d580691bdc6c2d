package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/mining"
)

// MiningHandler serves the mining control endpoints
type MiningHandler struct {
	mining *mining.Service
	logger *zap.Logger
}

// NewMiningHandler creates a new MiningHandler
func NewMiningHandler(m *mining.Service, logger *zap.Logger) *MiningHandler {
	return &MiningHandler{mining: m, logger: logger}
}

// Start handles POST /mining/start
// @Summary      Start mining
// @Description  Starts the control loop when the device satisfies the battery and charging gate
// @Tags         mining
// @Produce      json
// @Success      200  {object}  model.MiningStats
// @Failure      409  {object}  model.ErrorResponse
// @Router       /mining/start [post]
func (h *MiningHandler) Start(w http.ResponseWriter, r *http.Request) {
	if err := h.mining.Start(r.Context()); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if h.mining.State() == model.MiningStopped {
		writeJSON(w, http.StatusConflict, model.ErrorResponse{
			Error: "device conditions do not allow mining",
			Code:  "gate_closed",
		})
		return
	}
	writeJSON(w, http.StatusOK, h.mining.Stats())
}

// Stop handles POST /mining/stop
// @Summary      Stop mining
// @Tags         mining
// @Produce      json
// @Success      200  {object}  model.MiningStats
// @Router       /mining/stop [post]
func (h *MiningHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.mining.Stop()
	writeJSON(w, http.StatusOK, h.mining.Stats())
}

// Stats handles GET /mining/stats
// @Summary      Mining statistics
// @Tags         mining
// @Produce      json
// @Success      200  {object}  model.MiningStats
// @Router       /mining/stats [get]
func (h *MiningHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mining.Stats())
}

// ResetStats handles POST /mining/stats/reset
// @Summary      Reset mining statistics
// @Tags         mining
// @Produce      json
// @Success      200  {object}  model.MiningStats
// @Router       /mining/stats/reset [post]
func (h *MiningHandler) ResetStats(w http.ResponseWriter, r *http.Request) {
	h.mining.ResetStats()
	writeJSON(w, http.StatusOK, h.mining.Stats())
}

// CanRun handles GET /mining/can-run
// @Summary      Check mining gate
// @Tags         mining
// @Produce      json
// @Success      200  {object}  model.CanRunResponse
// @Router       /mining/can-run [get]
func (h *MiningHandler) CanRun(w http.ResponseWriter, r *http.Request) {
	ok, err := h.mining.CanRun(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, model.CanRunResponse{CanRun: ok})
}

// GetConfig handles GET /mining/config
// @Summary      Get mining config
// @Tags         mining
// @Produce      json
// @Success      200  {object}  model.MiningConfig
// @Router       /mining/config [get]
func (h *MiningHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mining.Config())
}

// UpdateConfig handles PUT /mining/config
// @Summary      Update mining config
// @Description  Updates the mining config. Omitted fields keep their current values and intervals are milliseconds. Running loops pick it up on their next iteration.
// @Tags         mining
// @Accept       json
// @Produce      json
// @Param        request  body      model.MiningConfig  true  "Config"
// @Success      200      {object}  model.MiningConfig
// @Failure      400      {object}  model.ErrorResponse
// @Router       /mining/config [put]
func (h *MiningHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.mining.Config()
	if err := decodeBody(w, r, &cfg); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := h.mining.UpdateConfig(cfg); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.mining.Config())
}

// SetBackground handles PUT /mining/background
// @Summary      Set background mode
// @Description  In background mode the hash loop uses the smaller batch size
// @Tags         mining
// @Accept       json
// @Produce      json
// @Param        request  body      model.BackgroundRequest  true  "Background flag"
// @Success      200      {object}  model.MiningStats
// @Router       /mining/background [put]
func (h *MiningHandler) SetBackground(w http.ResponseWriter, r *http.Request) {
	var req model.BackgroundRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	h.mining.SetBackgroundMode(req.Background)
	writeJSON(w, http.StatusOK, h.mining.Stats())
}
