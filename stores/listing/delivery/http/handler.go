package http

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
	"github.com/x-xyz/marketcore/domain/listing"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

const defaultLimit = 50

type HandlerCfg struct {
	ListingUC listing.Usecase
	EventUC   event.Usecase
	Auth      *authMiddleware.AuthMiddleware
	// Decimals of the native currency, used for display amounts
	Decimals int32
}

type handler struct {
	listing  listing.Usecase
	event    event.Usecase
	decimals int32
}

func New(e *echo.Echo, cfg *HandlerCfg) {
	h := &handler{
		listing:  cfg.ListingUC,
		event:    cfg.EventUC,
		decimals: cfg.Decimals,
	}
	auth := cfg.Auth.Auth()
	operatorOnly := []echo.MiddlewareFunc{auth, cfg.Auth.IsOperator()}

	g := e.Group("/market")
	g.POST("/listings/fixed", h.listFixedSale, auth)
	g.POST("/listings/auction", h.listAuctionSale, auth)
	g.DELETE("/listings/fixed/:index", h.unlistFixedSale, auth)
	g.DELETE("/listings/auction/:index", h.unlistAuctionSale, auth)
	g.POST("/listings/:index/buy", h.buyFixedSale, auth)
	g.POST("/listings/:index/bids", h.placeBid, auth)
	g.POST("/listings/:index/end", h.endAuction, auth)
	g.POST("/assets/:token/:tokenId/prune", h.pruneAsset, operatorOnly...)
	g.POST("/prune", h.pruneDelisted, operatorOnly...)

	g.GET("/listings/:index", h.getListing)
	g.GET("/listings/:index/events", h.getEvents)
	g.GET("/fixed", h.getFixedSales)
	g.GET("/auctions", h.getAuctions)
	g.GET("/assets/:token/:tokenId", h.getAsset)
	g.GET("/assets/:token/:tokenId/owners/:owner", h.getOwnerSlice)
}

func parseIndex(c echo.Context) (uint64, error) {
	index, err := strconv.ParseUint(c.Param("index"), 10, 64)
	if err != nil || index == 0 {
		return 0, domain.ErrBadParamInput
	}
	return index, nil
}

func parseAsset(c echo.Context) (domain.Address, domain.TokenId, error) {
	token := domain.Address(c.Param("token"))
	tokenId := domain.TokenId(c.Param("tokenId"))
	if !token.IsValid() || !tokenId.IsValid() {
		return "", "", domain.ErrBadParamInput
	}
	return token.ToLower(), tokenId, nil
}

func bindAndValidate(c echo.Context, p interface{}) error {
	if err := c.Bind(p); err != nil {
		return domain.ErrBadParamInput
	}
	if err := c.Validate(p); err != nil {
		return err
	}
	return nil
}

// amount has passed the `amount` validation already
func amount(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 10)
	return v
}

func (h *handler) listFixedSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Token      domain.Address `json:"token" validate:"required,address"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required,amount"`
		Price      string         `json:"price" validate:"required,amount"`
		Expiration int64          `json:"expiration"`
		Quantity   uint64         `json:"quantity"`
	}

	p := &payload{}
	if err := bindAndValidate(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	index, err := h.listing.ListFixedSale(ctx, caller, listing.FixedSaleParams{
		Token:      p.Token,
		TokenId:    p.TokenId,
		Price:      amount(p.Price),
		Expiration: p.Expiration,
		Quantity:   p.Quantity,
	})
	if err != nil {
		ctx.WithField("err", err).Warn("listing.ListFixedSale failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]uint64{"index": index})
}

func (h *handler) listAuctionSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type payload struct {
		Token     domain.Address `json:"token" validate:"required,address"`
		TokenId   domain.TokenId `json:"tokenId" validate:"required,amount"`
		Price     string         `json:"price" validate:"required,amount"`
		StartTime int64          `json:"startTime"`
		EndTime   int64          `json:"endTime"`
		Quantity  uint64         `json:"quantity"`
	}

	p := &payload{}
	if err := bindAndValidate(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	index, err := h.listing.ListAuctionSale(ctx, caller, listing.AuctionSaleParams{
		Token:     p.Token,
		TokenId:   p.TokenId,
		Price:     amount(p.Price),
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		Quantity:  p.Quantity,
	})
	if err != nil {
		ctx.WithField("err", err).Warn("listing.ListAuctionSale failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]uint64{"index": index})
}

func (h *handler) unlistFixedSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	index, err := parseIndex(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.listing.UnlistFixedSale(ctx, caller, index); err != nil {
		ctx.WithField("err", err).Warn("listing.UnlistFixedSale failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) unlistAuctionSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	index, err := parseIndex(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.listing.UnlistAuctionSale(ctx, caller, index); err != nil {
		ctx.WithField("err", err).Warn("listing.UnlistAuctionSale failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) buyFixedSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	index, err := parseIndex(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		// Quantity 0 buys every listed unit
		Quantity uint64 `json:"quantity"`
		Value    string `json:"value" validate:"required,amount"`
	}

	p := &payload{}
	if err := bindAndValidate(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.BuyFixedSale(ctx, caller, index, p.Quantity, amount(p.Value)); err != nil {
		ctx.WithField("err", err).Warn("listing.BuyFixedSale failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	index, err := parseIndex(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		Value string `json:"value" validate:"required,amount"`
	}

	p := &payload{}
	if err := bindAndValidate(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.PlaceBid(ctx, caller, index, amount(p.Value)); err != nil {
		ctx.WithField("err", err).Warn("listing.PlaceBid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	index, err := parseIndex(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.listing.EndAuction(ctx, caller, index); err != nil {
		ctx.WithField("err", err).Warn("listing.EndAuction failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

type listingResp struct {
	Listing       *listing.ListingView `json:"listing"`
	FixedListed   bool                 `json:"fixedListed"`
	AuctionListed bool                 `json:"auctionListed"`
	HasBids       bool                 `json:"hasBids"`
	HighestBid    *listing.BidView     `json:"highestBid,omitempty"`
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	index, err := parseIndex(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sl, err := h.listing.SaleListing(ctx, index)
	if err != nil {
		ctx.WithField("err", err).Error("listing.SaleListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := &listingResp{
		Listing:       sl.View(h.decimals),
		FixedListed:   sl.Kind == listing.KindFixedSale,
		AuctionListed: sl.Kind == listing.KindAuctionSale,
	}
	if res.AuctionListed {
		bid, err := h.listing.HighestBid(ctx, index)
		if err != nil {
			ctx.WithField("err", err).Error("listing.HighestBid failed")
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		res.HasBids = bid.HasBidder()
		res.HighestBid = bid.View(h.decimals)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	index, err := parseIndex(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Offset int `query:"offset" validate:"min=0"`
		Limit  int `query:"limit" validate:"min=1,max=1000"`
	}

	p := &params{Limit: defaultLimit}
	if err := bindAndValidate(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.event.FindByListing(ctx, index, p.Offset, p.Limit); err != nil {
		ctx.WithField("err", err).Error("event.FindByListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getFixedSales(c echo.Context) error {
	return h.page(c, "FixedSale", h.listing.CountFixedSaleListings, h.listing.ListFixedSaleListings)
}

func (h *handler) getAuctions(c echo.Context) error {
	return h.page(c, "AuctionSale", h.listing.CountAuctionSaleListings, h.listing.ListAuctionSaleListings)
}

// page responds with the total of one listing kind and a page of its indices
func (h *handler) page(
	c echo.Context,
	kind string,
	count func(ctx.Ctx) (int, error),
	list func(c ctx.Ctx, offset, count int) ([]uint64, error),
) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset int `query:"offset" validate:"min=0"`
		Count  int `query:"count" validate:"min=0,max=1000"`
	}

	p := &params{Count: defaultLimit}
	if err := bindAndValidate(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	total, err := count(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("listing.Count" + kind + "Listings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	indices, err := list(ctx, p.Offset, p.Count)
	if err != nil {
		ctx.WithField("err", err).Error("listing.List" + kind + "Listings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Total   int      `json:"total"`
		Indices []uint64 `json:"indices"`
	}{total, indices}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) pruneAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token, tokenId, err := parseAsset(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.PruneAsset(ctx, token, tokenId); err != nil {
		ctx.WithField("err", err).Error("listing.PruneAsset failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) pruneDelisted(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	pruned, err := h.listing.PruneDelisted(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("listing.PruneDelisted failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]int{"pruned": pruned})
}

func (h *handler) getAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token, tokenId, err := parseAsset(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	index, err := h.listing.AssetListing(ctx, token, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("listing.AssetListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	owners, err := h.listing.SaleListingOwners(ctx, token, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("listing.SaleListingOwners failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Erc721Listing uint64           `json:"erc721Listing"`
		Erc1155Owners []domain.Address `json:"erc1155Owners"`
	}{index, owners}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getOwnerSlice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token, tokenId, err := parseAsset(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	owner := domain.Address(c.Param("owner"))
	if !owner.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	if res, err := h.listing.OwnerSlice(ctx, token, tokenId, owner); err != nil {
		ctx.WithField("err", err).Error("listing.OwnerSlice failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
