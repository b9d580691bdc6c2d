package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/internal/settings"
)

// SettingsHandler serves application settings
type SettingsHandler struct {
	store  *settings.Store
	logger *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(store *settings.Store, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{store: store, logger: logger}
}

// Get handles GET /settings
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  model.Settings
// @Router       /settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Load()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Update handles PUT /settings
// @Summary      Update settings
// @Description  Saves settings. A network change takes effect after restart.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      model.Settings  true  "Settings"
// @Success      200      {object}  model.Settings
// @Failure      400      {object}  model.ErrorResponse
// @Router       /settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Load()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := decodeBody(w, r, &s); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if _, ok := model.Networks[s.Network]; !ok {
		writeBadRequest(w, "unknown network: "+string(s.Network))
		return
	}
	if err := h.store.Save(s); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Networks handles GET /settings/networks
// @Summary      List known networks
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]model.NetworkInfo
// @Router       /settings/networks [get]
func (h *SettingsHandler) Networks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Networks)
}
