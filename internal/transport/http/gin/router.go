package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/prostormat/prostormat-api/internal/domain"
	postgresrepo "github.com/prostormat/prostormat-api/internal/repository/postgres"
	redisrepo "github.com/prostormat/prostormat-api/internal/repository/redis"
	"github.com/prostormat/prostormat-api/internal/service"
	"github.com/prostormat/prostormat-api/internal/service/admin"
	"github.com/prostormat/prostormat-api/internal/service/inquiry"
	"github.com/prostormat/prostormat-api/internal/service/listing"
	"github.com/prostormat/prostormat-api/internal/service/venues"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	adminToken string,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API. The optional AdminAuth only records whether the caller
	// verified as admin; it rejects nobody.
	r.GET("/venues", AdminAuth(adminToken, false), handleListVenues(svcs, logger))
	r.GET("/venues/:slug", AdminAuth(adminToken, false), handleGetVenue(svcs))
	r.GET("/homepage/venues", handleHomepageVenues(svcs))

	r.POST("/venues/:slug/inquiries", handleCreateInquiry(svcs, idem))

	// Admin API
	adm := r.Group("/admin", AdminAuth(adminToken, true))
	{
		adm.POST("/venues", handleCreateVenue(svcs, idem))
		adm.PUT("/venues/:id/priority", handleSetPriority(svcs))
		adm.DELETE("/venues/:id/priority", handleClearPriority(svcs))
		adm.PUT("/venues/:id/status", handleSetStatus(svcs))
		adm.PUT("/homepage-slots/:position", handleAssignSlot(svcs))
		adm.DELETE("/homepage-slots/:position", handleReleaseSlot(svcs))
		adm.GET("/inquiries/:id", handleGetInquiry(svcs))
		adm.GET("/venues/:id/inquiries", handleListVenueInquiries(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List venues (ranked, paginated)
// @Param    q               query  string  false  "free-text search"
// @Param    type            query  string  false  "venue type tag"
// @Param    district        query  string  false  "district, e.g. Praha 1"
// @Param    capacity        query  string  false  "capacity bucket lower bound (0,30,60,120,240,480) or all"
// @Param    page            query  int     false  "1-based page"
// @Param    seed            query  int     false  "order seed from a previous page"
// @Param    include_hidden  query  bool    false  "admins only"
// @Success  200  {object}  ListVenuesResponse
// @Router   /venues [get]
func handleListVenues(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := listing.Params{
			Filter: listing.Filter{
				Query:     c.Query("q"),
				VenueType: c.Query("type"),
				District:  c.Query("district"),
				Capacity:  c.Query("capacity"),
			},
			Page:          parseIntDefault(c.Query("page"), 1),
			Seed:          parseSeed(c.Query("seed")),
			IncludeHidden: c.Query("include_hidden") == "true",
			IsAdmin:       isAdminRequest(c),
		}

		page, err := svcs.Listing.List(c.Request.Context(), params)
		if err != nil {
			if errors.Is(err, listing.ErrStoreUnavailable) {
				// Empty state for the client; the cause stays in logs so
				// a store outage is not mistaken for a zero-result match.
				logger.Error("venue store failure on listing", "error", err)
				c.JSON(http.StatusOK, ListVenuesResponse{
					Venues:      []VenueSummary{},
					CurrentPage: 1,
				})
				return
			}
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, ListVenuesResponse{
			Venues:      toVenueSummaries(page.Venues),
			TotalCount:  page.TotalCount,
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			HasMore:     page.HasMore,
			OrderSeed:   page.Seed,
		})
	}
}

// @Summary  Venue detail with sub-venues
// @Param    slug  path  string  true  "Venue slug"
// @Success  200  {object}  VenueDetailResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /venues/{slug} [get]
func handleGetVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svcs.Venues.GetDetail(c.Request.Context(), c.Param("slug"), isAdminRequest(c))
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, toVenueDetail(d), "public, max-age=60", true)
	}
}

// @Summary  Featured venues in homepage-slot order
// @Success  200  {array}  VenueSummary
// @Router   /homepage/venues [get]
func handleHomepageVenues(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		vs, err := svcs.Venues.Featured(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, toVenueSummaries(vs), "public, max-age=60", true)
	}
}

// @Summary  Create venue inquiry (idempotent, rate limited)
// @Param    slug  path  string  true  "Venue slug"
// @Param    req   body  CreateInquiryRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} CreateInquiryResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /venues/{slug}/inquiries [post]
func handleCreateInquiry(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var req CreateInquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		inq := domain.Inquiry{
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			GuestCount: req.GuestCount,
			Message:    req.Message,
		}
		if req.EventDate != "" {
			d, err := parseRFC3339(req.EventDate)
			if err != nil {
				badRequest(c, "invalid event_date (RFC3339)")
				return
			}
			inq.EventDate = &d
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemInquiry(slug, idemKey)

			if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
				return
			}

			locked, err := idem.AcquireLock(c.Request.Context(), idemStorageKey, 60*time.Second)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		id, err := svcs.Inquiry.Create(c.Request.Context(), slug, inq, rlKey)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			if errors.Is(err, inquiry.ErrRateLimited) {
				c.Header("Retry-After", "60")
				c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})
				return
			}
			respondErr(c, err)
			return
		}

		resp := CreateInquiryResponse{InquiryID: id.String()}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Create venue (idempotent)
// @Param    req body  CreateVenueRequest true "payload"
// @Success  201 {object} CreateVenueResponse
// @Failure  409 {object} ErrorResponse
// @Router   /admin/venues [post]
func handleCreateVenue(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateVenueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemVenueCreate(idemKey)

			if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
				return
			}

			locked, err := idem.AcquireLock(c.Request.Context(), idemStorageKey, 60*time.Second)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		id, err := svcs.Admin.CreateVenue(c.Request.Context(), createVenueParams(req))
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		resp := CreateVenueResponse{VenueID: id}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Set venue priority tier
// @Param    id   path  int  true  "Venue ID"
// @Param    req  body  SetPriorityRequest true "payload"
// @Success  204
// @Router   /admin/venues/{id}/priority [put]
func handleSetPriority(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req SetPriorityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svcs.Admin.SetPriority(c.Request.Context(), venueID, &req.Priority); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Clear venue priority tier
// @Param    id  path  int  true  "Venue ID"
// @Success  204
// @Router   /admin/venues/{id}/priority [delete]
func handleClearPriority(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Admin.SetPriority(c.Request.Context(), venueID, nil); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Set venue status
// @Param    id   path  int  true  "Venue ID"
// @Param    req  body  SetStatusRequest true "payload"
// @Success  204
// @Router   /admin/venues/{id}/status [put]
func handleSetStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req SetStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svcs.Admin.SetStatus(c.Request.Context(), venueID, domain.VenueStatus(req.Status)); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Assign homepage slot
// @Param    position  path  int  true  "Slot position 1..12"
// @Param    req       body  AssignSlotRequest true "payload"
// @Success  204
// @Failure  409 {object} ErrorResponse "slot taken"
// @Router   /admin/homepage-slots/{position} [put]
func handleAssignSlot(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		position, ok := parseIntParam(c, "position")
		if !ok {
			return
		}
		var req AssignSlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svcs.Admin.AssignHomepageSlot(c.Request.Context(), position, req.VenueID); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Release homepage slot
// @Param    position  path  int  true  "Slot position 1..12"
// @Success  204
// @Router   /admin/homepage-slots/{position} [delete]
func handleReleaseSlot(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		position, ok := parseIntParam(c, "position")
		if !ok {
			return
		}
		if err := svcs.Admin.ReleaseHomepageSlot(c.Request.Context(), position); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Get inquiry
// @Param    id  path  string  true  "Inquiry ID (uuid)"
// @Success  200 {object} InquiryResponse
// @Router   /admin/inquiries/{id} [get]
func handleGetInquiry(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid id")
			return
		}
		inq, err := svcs.Inquiry.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toInquiryResponse(*inq))
	}
}

// @Summary  List venue inquiries
// @Param    id     path   int  true  "Venue ID"
// @Param    limit  query  int  false "page size"
// @Param    offset query  int  false "offset"
// @Success  200 {array} InquiryResponse
// @Router   /admin/venues/{id}/inquiries [get]
func handleListVenueInquiries(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		limit := parseIntDefault(c.Query("limit"), 50)
		offset := parseIntDefault(c.Query("offset"), 0)

		inqs, err := svcs.Inquiry.ListForVenue(c.Request.Context(), venueID, limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}

		out := make([]InquiryResponse, 0, len(inqs))
		for _, inq := range inqs {
			out = append(out, toInquiryResponse(inq))
		}
		c.JSON(http.StatusOK, out)
	}
}

// --- Helpers ---

func createVenueParams(req CreateVenueRequest) postgresrepo.CreateVenueParams {
	return postgresrepo.CreateVenueParams{
		ParentID:         req.ParentID,
		Slug:             req.Slug,
		Name:             req.Name,
		Description:      req.Description,
		Address:          req.Address,
		District:         req.District,
		VenueType:        req.VenueType,
		VenueTypes:       req.VenueTypes,
		CapacitySeated:   req.CapacitySeated,
		CapacityStanding: req.CapacityStanding,
		Status:           domain.VenueStatus(req.Status),
	}
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func parseIntParam(c *gin.Context, name string) (int, bool) {
	v, ok := parseInt64Param(c, name)
	return int(v), ok
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// parseSeed returns nil for an absent or malformed seed; the listing
// service then mints a fresh one.
func parseSeed(s string) *int32 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil
	}
	seed := int32(v)
	return &seed
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// admin service
	case errors.Is(err, admin.ErrVenueConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "venue conflict"})
		return
	case errors.Is(err, admin.ErrSlotTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "homepage slot taken"})
		return
	case errors.Is(err, admin.ErrVenueHasSlot):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "venue holds a homepage slot"})
		return
	case errors.Is(err, admin.ErrSlotEmpty):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "homepage slot is empty"})
		return
	case errors.Is(err, admin.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "venue not found"})
		return
	case errors.Is(err, admin.ErrInvalidPriority),
		errors.Is(err, admin.ErrInvalidPosition),
		errors.Is(err, admin.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	// venues service
	case errors.Is(err, venues.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "venue not found"})
		return
	// inquiry service
	case errors.Is(err, inquiry.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "venue not found"})
		return
	case errors.Is(err, inquiry.ErrInquiryNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "inquiry not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
