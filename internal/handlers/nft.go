package handlers

import (
	"context"
	"net/http"

	"github.com/cosmichub/api/internal/errx"
	"github.com/cosmichub/api/internal/nft"
	"go.uber.org/zap"
)

// NFTHandler serves NFT metadata endpoints backed by Objkt and OpenSea.
type NFTHandler struct {
	objkt    *nft.ObjktClient
	resolver *nft.Resolver
	contract string
	logger   *zap.Logger
}

// NewNFTHandler creates an NFT metadata handler for the given featured
// contract.
func NewNFTHandler(objkt *nft.ObjktClient, resolver *nft.Resolver, contract string, logger *zap.Logger) *NFTHandler {
	return &NFTHandler{
		objkt:    objkt,
		resolver: resolver,
		contract: contract,
		logger:   logger,
	}
}

// GetCollection lists the featured collection's tokens, degrading to bundled
// sample data when the provider is unreachable or empty.
func (h *NFTHandler) GetCollection(ctx context.Context, _ *struct{}) (*NFTCollectionResponse, error) {
	resp := &NFTCollectionResponse{}
	resp.Body.Success = true

	tokens, err := h.objkt.CollectionTokens(ctx, h.contract)
	if err != nil {
		h.logger.Warn("objkt api not available, using sample data", zap.Error(err))
	}

	if len(tokens) == 0 {
		tokens = nft.SampleTokens()
		resp.Body.Note = "Using sample NFT data. To use real Objkt NFTs, ensure the API is accessible."
	}

	resp.Body.Count = len(tokens)
	resp.Body.Tokens = tokens

	return resp, nil
}

// GetCollectionImage resolves a collection URL to a preview image. Only
// opensea.io and objkt.com URLs are accepted.
func (h *NFTHandler) GetCollectionImage(ctx context.Context, req *OpenSeaCollectionRequest) (*OpenSeaCollectionResponse, error) {
	resp := &OpenSeaCollectionResponse{}

	if req.URL == "" {
		resp.Status = http.StatusBadRequest
		resp.Body.Error = "Missing or invalid 'url' query parameter"

		return resp, nil
	}

	image, err := h.resolver.Resolve(ctx, req.URL)
	if err != nil {
		if errx.KindOf(err) == errx.Invalid {
			resp.Status = http.StatusBadRequest
			resp.Body.Error = unwrapMessage(err)

			return resp, nil
		}

		h.logger.Error("collection image resolution failed", zap.String("url", req.URL), zap.Error(err))

		resp.Status = http.StatusInternalServerError
		resp.Body.Error = "Internal server error"

		return resp, nil
	}

	resp.Status = http.StatusOK
	resp.Body.Success = true
	resp.Body.CollectionURL = image.CollectionURL
	resp.Body.CollectionName = image.CollectionName

	if image.ImageURL != "" {
		resp.Body.ImageURL = &image.ImageURL
	}

	return resp, nil
}

// unwrapMessage strips the operation prefix so clients see only the cause.
func unwrapMessage(err error) string {
	type unwrapper interface{ Unwrap() error }

	if u, ok := err.(unwrapper); ok {
		if inner := u.Unwrap(); inner != nil {
			return inner.Error()
		}
	}

	return err.Error()
}
