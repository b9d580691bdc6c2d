package handler

import (
	"net/http"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// ListNFTs handles GET /nft
// @Summary      List NFTs
// @Description  Lists layer-2 tokens held by owner, or by the current account when owner is omitted
// @Tags         nft
// @Produce      json
// @Param        owner  query     string  false  "Owner address"
// @Success      200    {object}  model.NFTListResponse
// @Failure      400    {object}  model.ErrorResponse
// @Failure      502    {object}  model.ErrorResponse
// @Router       /nft [get]
func (h *WalletHandler) ListNFTs(w http.ResponseWriter, r *http.Request) {
	resp, err := h.drachma.ListNFTs(r.Context(), r.URL.Query().Get("owner"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// MintNFT handles POST /nft/mint
// @Summary      Mint NFT
// @Description  Mints a token owned by the current account
// @Tags         nft
// @Accept       json
// @Produce      json
// @Param        request  body      model.MintNFTRequest  true  "Token metadata"
// @Success      200      {object}  model.MintNFTResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /nft/mint [post]
func (h *WalletHandler) MintNFT(w http.ResponseWriter, r *http.Request) {
	var req model.MintNFTRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	resp, err := h.drachma.MintNFT(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// TransferNFT handles POST /nft/transfer
// @Summary      Transfer NFT
// @Tags         nft
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferNFTRequest  true  "Token and recipient"
// @Success      200      {object}  model.TransferNFTResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /nft/transfer [post]
func (h *WalletHandler) TransferNFT(w http.ResponseWriter, r *http.Request) {
	var req model.TransferNFTRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	resp, err := h.drachma.TransferNFT(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
