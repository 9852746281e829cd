// ABOUTME: Reading handlers for the Huma API
// ABOUTME: Serves the display payload plus debug and cache-control endpoints

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"reading-display-api/api/dto/mappers"
	"reading-display-api/api/dto/responses"
	"reading-display-api/core/activity"
	"reading-display-api/core/domain"
	"reading-display-api/core/reading"
)

// ReadingService interface defines the methods needed from the reading service
type ReadingService interface {
	CurrentReading(ctx context.Context) *domain.CanonicalBook
	Inspect(ctx context.Context) (*reading.DebugInfo, error)
	ClearCache(ctx context.Context) error
	RefreshChallenge(ctx context.Context) (*domain.ChallengeState, bool)
}

// ReadingHandler handles reading display HTTP requests
type ReadingHandler struct {
	service ReadingService

	// now is swappable for tests
	now func() time.Time
}

// NewReadingHandler creates a new reading handler
func NewReadingHandler(service ReadingService) *ReadingHandler {
	return &ReadingHandler{
		service: service,
		now:     time.Now,
	}
}

// RegisterRoutes registers all reading display routes
func (h *ReadingHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getDisplayData",
		Method:      http.MethodGet,
		Path:        "/display-data",
		Summary:     "Get the current reading payload",
		Description: "Returns the fused current reading record and challenge progress, served from cache when fresh",
		Tags:        []string{"Display"},
	}, h.GetDisplayData)

	huma.Register(api, huma.Operation{
		OperationID: "getDebug",
		Method:      http.MethodGet,
		Path:        "/debug",
		Summary:     "Inspect the extraction pipeline",
		Description: "Runs a fresh extraction pass without touching the cache and reports the per-book groups",
		Tags:        []string{"Debug"},
	}, h.GetDebug)

	huma.Register(api, huma.Operation{
		OperationID: "getDebugEntries",
		Method:      http.MethodGet,
		Path:        "/debug-entries",
		Summary:     "List raw feed entries with classification",
		Description: "Shows every feed entry and how the classifier treated it",
		Tags:        []string{"Debug"},
	}, h.GetDebugEntries)

	huma.Register(api, huma.Operation{
		OperationID: "testChallenge",
		Method:      http.MethodGet,
		Path:        "/test-challenge",
		Summary:     "Force a fresh challenge lookup",
		Description: "Drops the cached challenge result and re-runs both lookup strategies",
		Tags:        []string{"Debug"},
	}, h.TestChallenge)

	huma.Register(api, huma.Operation{
		OperationID: "clearCache",
		Method:      http.MethodGet,
		Path:        "/clear-cache",
		Summary:     "Clear both cache slots",
		Description: "Drops the cached reading record and challenge result so the next request refreshes",
		Tags:        []string{"Debug"},
	}, h.ClearCache)

	huma.Register(api, huma.Operation{
		OperationID: "getTestData",
		Method:      http.MethodGet,
		Path:        "/test-data",
		Summary:     "Get a static sample payload",
		Description: "Returns a fixed payload for display layout development without upstream fetches",
		Tags:        []string{"Debug"},
	}, h.GetTestData)
}

// DisplayDataOutput defines the output for the GetDisplayData operation
type DisplayDataOutput struct {
	Body responses.DisplayDataResponse
}

// GetDisplayData handles the GET /display-data endpoint
func (h *ReadingHandler) GetDisplayData(ctx context.Context, _ *struct{}) (*DisplayDataOutput, error) {
	book := h.service.CurrentReading(ctx)
	return &DisplayDataOutput{
		Body: *mappers.ToDisplayDataResponse(book, h.now()),
	}, nil
}

// DebugOutput defines the output for the GetDebug operation
type DebugOutput struct {
	Body responses.DebugResponse
}

// GetDebug handles the GET /debug endpoint
func (h *ReadingHandler) GetDebug(ctx context.Context, _ *struct{}) (*DebugOutput, error) {
	info, err := h.service.Inspect(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &DebugOutput{
		Body: *mappers.ToDebugResponse(info, h.now()),
	}, nil
}

// DebugEntriesOutput defines the output for the GetDebugEntries operation
type DebugEntriesOutput struct {
	Body responses.DebugEntriesResponse
}

// GetDebugEntries handles the GET /debug-entries endpoint
func (h *ReadingHandler) GetDebugEntries(ctx context.Context, _ *struct{}) (*DebugEntriesOutput, error) {
	info, err := h.service.Inspect(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	resp := responses.DebugEntriesResponse{
		Total:   len(info.Entries),
		Entries: make([]responses.EntryResponse, 0, len(info.Entries)),
	}

	for _, entry := range info.Entries {
		er := responses.EntryResponse{
			Title:          entry.Title,
			AuthorName:     entry.AuthorName,
			HasDescription: entry.HasDescription(),
			Kind:           "skipped",
		}
		if entry.Published != nil {
			er.Published = entry.Published.Format(time.RFC3339)
		}
		if record, ok := activity.Classify(entry); ok {
			er.Kind = string(record.Kind)
			er.Progress = record.Progress
		}
		resp.Entries = append(resp.Entries, er)
	}

	return &DebugEntriesOutput{Body: resp}, nil
}

// ChallengeOutput defines the output for the TestChallenge operation
type ChallengeOutput struct {
	Body responses.ChallengeResponse
}

// TestChallenge handles the GET /test-challenge endpoint
func (h *ReadingHandler) TestChallenge(ctx context.Context, _ *struct{}) (*ChallengeOutput, error) {
	state, found := h.service.RefreshChallenge(ctx)

	resp := responses.ChallengeResponse{Found: found}
	if found {
		resp.Challenge = state.String()
		resp.BooksRead = state.BooksRead
		resp.BooksGoal = state.BooksGoal
	}

	return &ChallengeOutput{Body: resp}, nil
}

// ClearCacheOutput defines the output for the ClearCache operation
type ClearCacheOutput struct {
	Body responses.ClearCacheResponse
}

// ClearCache handles the GET /clear-cache endpoint
func (h *ReadingHandler) ClearCache(ctx context.Context, _ *struct{}) (*ClearCacheOutput, error) {
	if err := h.service.ClearCache(ctx); err != nil {
		return nil, toHumaError(err)
	}
	return &ClearCacheOutput{
		Body: responses.ClearCacheResponse{Status: "cache cleared"},
	}, nil
}

// GetTestData handles the GET /test-data endpoint
func (h *ReadingHandler) GetTestData(ctx context.Context, _ *struct{}) (*DisplayDataOutput, error) {
	start := h.now().AddDate(0, 0, -12)
	update := h.now().AddDate(0, 0, -1)

	sample := &domain.CanonicalBook{
		Title:        "The Name of the Wind",
		Author:       "Patrick Rothfuss",
		Progress:     42,
		CoverURL:     "https://example.com/covers/the-name-of-the-wind.jpg",
		StartDate:    &start,
		UpdateDate:   &update,
		Challenge:    "12 of 30 books",
		EntriesCount: 3,
	}

	return &DisplayDataOutput{
		Body: *mappers.ToDisplayDataResponse(sample, h.now()),
	}, nil
}
