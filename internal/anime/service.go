package anime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/cache"
	"github.com/varoOP/sankanime/internal/domain"
)

type Service interface {
	GetHomeInfo(ctx context.Context) (*domain.Home, error)
	FetchAnimeInfo(ctx context.Context, id string) (*domain.AnimeInfo, error)
	FetchRandomAnimeInfo(ctx context.Context) (*domain.AnimeInfo, error)
	GetEpisodes(ctx context.Context, id string) (*domain.Episodes, error)
	GetServers(ctx context.Context, id, episodeID string) ([]domain.Server, error)
	GetStreamInfo(ctx context.Context, id, episodeID, server, streamType string) (*domain.StreamInfo, error)
	GetQtip(ctx context.Context, id string) (*domain.Qtip, error)
	GetSearchSuggestion(ctx context.Context, keyword string) ([]domain.Suggestion, error)
	GetSchedule(ctx context.Context, date string) ([]domain.ScheduleEntry, error)
	GetNextEpisodeSchedule(ctx context.Context, id string) (*domain.NextEpisode, error)
	FetchVoiceActorInfo(ctx context.Context, id string, page int) (*domain.CharacterPage, error)
	GetCategoryInfo(ctx context.Context, path string, page int) (*domain.CategoryPage, error)
	GetSearch(ctx context.Context, keyword string, page int) (*domain.SearchPage, error)
	InspectHomeCache(ctx context.Context) (cache.Info, error)
}

type service struct {
	log       zerolog.Logger
	transport domain.Transport
	home      *Coordinator[*domain.Home]
	homeCache *cache.Cache[*domain.Home]
}

// NewService wires the endpoint functions to transport and the home
// coordinator to a cache kept in store.
func NewService(log zerolog.Logger, config *domain.Config, transport domain.Transport, store domain.KeyValueStore, opts ...CoordinatorOption[*domain.Home]) Service {
	s := &service{
		log:       log.With().Str("module", "anime").Logger(),
		transport: transport,
		homeCache: cache.New[*domain.Home](log, store, config.CacheVersion, config.CacheTTL),
	}

	s.home = NewCoordinator(log, s.homeCache, s.fetchHome, opts...)
	return s
}

// envelopeFields are members of an API response that carry no result data
var envelopeFields = map[string]bool{
	"success": true,
	"status":  true,
	"message": true,
	"results": true,
}

// homePayloadEmpty reports whether an unwrapped home payload holds no data:
// JSON null or an object whose members are all envelope fields or empty
// values. Members this client does not model still count as data.
func homePayloadEmpty(raw json.RawMessage) bool {
	if isEmptyValue(raw) {
		return true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	for k, v := range obj {
		if !envelopeFields[k] && !isEmptyValue(v) {
			return false
		}
	}
	return true
}

func isEmptyValue(raw json.RawMessage) bool {
	if cache.IsEmptyJSON(raw) {
		return true
	}
	switch string(bytes.TrimSpace(raw)) {
	case "{}", "[]":
		return true
	}
	return false
}

func (s *service) get(path string, params url.Values) Call {
	return func(ctx context.Context) (json.RawMessage, error) {
		return s.transport.Get(ctx, path, params)
	}
}

// GetHomeInfo returns the home aggregate through the cache and single-flight coordinator
func (s *service) GetHomeInfo(ctx context.Context) (*domain.Home, error) {
	return s.home.Get(ctx)
}

// fetchHome returns nil without error for an empty payload so the
// coordinator reports ErrEmptyResult.
func (s *service) fetchHome(ctx context.Context) (*domain.Home, error) {
	const msg = "failed to fetch home data from api"

	raw, err := Execute[json.RawMessage](ctx, s.log, s.get("/home", nil), msg)
	if err != nil {
		return nil, err
	}
	if homePayloadEmpty(raw) {
		return nil, nil
	}

	return Execute[*domain.Home](ctx, s.log, func(context.Context) (json.RawMessage, error) { return raw, nil }, msg)
}

// InspectHomeCache describes the stored home record without touching it
func (s *service) InspectHomeCache(ctx context.Context) (cache.Info, error) {
	return s.homeCache.Inspect(ctx, s.home.now())
}

func (s *service) FetchAnimeInfo(ctx context.Context, id string) (*domain.AnimeInfo, error) {
	return Execute[*domain.AnimeInfo](ctx, s.log,
		s.get("/info", url.Values{"id": {id}}),
		fmt.Sprintf("failed to fetch anime info for id: %s", id))
}

// FetchRandomAnimeInfo resolves a random id first and then fetches its info
func (s *service) FetchRandomAnimeInfo(ctx context.Context) (*domain.AnimeInfo, error) {
	id, err := Execute[domain.FlexString](ctx, s.log, s.get("/random/id", nil), "failed to fetch random anime id")
	if err != nil {
		return nil, err
	}
	if id == "" {
		s.log.Error().Err(ErrEmptyResult).Msg("failed to fetch random anime id")
		return nil, ErrEmptyResult
	}

	return Execute[*domain.AnimeInfo](ctx, s.log,
		s.get("/info", url.Values{"id": {id.String()}}),
		fmt.Sprintf("failed to fetch anime info for random id: %s", id))
}

func (s *service) GetEpisodes(ctx context.Context, id string) (*domain.Episodes, error) {
	return Execute[*domain.Episodes](ctx, s.log,
		s.get("/episodes/"+url.PathEscape(id), nil),
		fmt.Sprintf("failed to fetch episodes for id: %s", id))
}

func (s *service) GetServers(ctx context.Context, id, episodeID string) ([]domain.Server, error) {
	return Execute[[]domain.Server](ctx, s.log,
		s.get("/servers/"+url.PathEscape(id), url.Values{"ep": {episodeID}}),
		fmt.Sprintf("failed to fetch servers for episode: %s", episodeID))
}

func (s *service) GetStreamInfo(ctx context.Context, id, episodeID, server, streamType string) (*domain.StreamInfo, error) {
	params := url.Values{
		"id":     {id},
		"ep":     {episodeID},
		"server": {server},
		"type":   {streamType},
	}
	return Execute[*domain.StreamInfo](ctx, s.log,
		s.get("/stream", params),
		fmt.Sprintf("failed to fetch stream info for episode: %s", episodeID))
}

// GetQtip sends only the numeric suffix of slug ids such as "one-piece-100"
func (s *service) GetQtip(ctx context.Context, id string) (*domain.Qtip, error) {
	processed := id[strings.LastIndex(id, "-")+1:]
	return Execute[*domain.Qtip](ctx, s.log,
		s.get("/qtip/"+url.PathEscape(processed), nil),
		fmt.Sprintf("failed to fetch qtip for id: %s", id))
}

func (s *service) GetSearchSuggestion(ctx context.Context, keyword string) ([]domain.Suggestion, error) {
	return Execute[[]domain.Suggestion](ctx, s.log,
		s.get("/search/suggest", url.Values{"keyword": {keyword}}),
		"failed to fetch search suggestions")
}

func (s *service) GetSchedule(ctx context.Context, date string) ([]domain.ScheduleEntry, error) {
	return Execute[[]domain.ScheduleEntry](ctx, s.log,
		s.get("/schedule", url.Values{"date": {date}}),
		fmt.Sprintf("failed to fetch schedule for date: %s", date))
}

func (s *service) GetNextEpisodeSchedule(ctx context.Context, id string) (*domain.NextEpisode, error) {
	return Execute[*domain.NextEpisode](ctx, s.log,
		s.get("/schedule/"+url.PathEscape(id), nil),
		fmt.Sprintf("failed to fetch next episode schedule for id: %s", id))
}

func (s *service) FetchVoiceActorInfo(ctx context.Context, id string, page int) (*domain.CharacterPage, error) {
	return Execute[*domain.CharacterPage](ctx, s.log,
		s.get("/character/list/"+url.PathEscape(id), url.Values{"page": {strconv.Itoa(defaultPage(page))}}),
		fmt.Sprintf("failed to fetch voice actor info for id: %s", id))
}

// GetCategoryInfo lists a category such as "most-popular" or "genre/action"
func (s *service) GetCategoryInfo(ctx context.Context, path string, page int) (*domain.CategoryPage, error) {
	return Execute[*domain.CategoryPage](ctx, s.log,
		s.get("/"+strings.Trim(path, "/"), url.Values{"page": {strconv.Itoa(defaultPage(page))}}),
		fmt.Sprintf("failed to fetch category data for path: %s", path))
}

func (s *service) GetSearch(ctx context.Context, keyword string, page int) (*domain.SearchPage, error) {
	params := url.Values{
		"keyword": {keyword},
		"page":    {strconv.Itoa(defaultPage(page))},
	}
	return Execute[*domain.SearchPage](ctx, s.log,
		s.get("/search", params),
		fmt.Sprintf("failed to fetch search results for: %s", keyword))
}

func defaultPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
