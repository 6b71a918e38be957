package domain

import "encoding/json"

// AnimeSummary is the card shape shared by most list sections
type AnimeSummary struct {
	ID            string                `json:"id" yaml:"id"`
	DataID        FlexString            `json:"data_id,omitempty" yaml:"data_id,omitempty"`
	Number        FlexString            `json:"number,omitempty" yaml:"number,omitempty"`
	Poster        string                `json:"poster,omitempty" yaml:"poster,omitempty"`
	Title         string                `json:"title" yaml:"title"`
	JapaneseTitle string                `json:"japanese_title,omitempty" yaml:"japanese_title,omitempty"`
	Description   string                `json:"description,omitempty" yaml:"description,omitempty"`
	TVInfo        map[string]FlexString `json:"tvInfo,omitempty" yaml:"tvInfo,omitempty"`
}

// TopTen groups the ranked lists of the home page
type TopTen struct {
	Today []AnimeSummary `json:"today,omitempty" yaml:"today,omitempty"`
	Week  []AnimeSummary `json:"week,omitempty" yaml:"week,omitempty"`
	Month []AnimeSummary `json:"month,omitempty" yaml:"month,omitempty"`
}

// Home is the home aggregate, the only cached result
type Home struct {
	Spotlights []AnimeSummary `json:"spotlights,omitempty" yaml:"spotlights,omitempty"`
	Trending   []AnimeSummary `json:"trending,omitempty" yaml:"trending,omitempty"`
	TopTen     TopTen         `json:"topTen" yaml:"topTen"`
	Today      struct {
		Schedule []ScheduleEntry `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	} `json:"today" yaml:"today"`
	TopAiring       []AnimeSummary `json:"topAiring,omitempty" yaml:"topAiring,omitempty"`
	MostPopular     []AnimeSummary `json:"mostPopular,omitempty" yaml:"mostPopular,omitempty"`
	MostFavorite    []AnimeSummary `json:"mostFavorite,omitempty" yaml:"mostFavorite,omitempty"`
	LatestCompleted []AnimeSummary `json:"latestCompleted,omitempty" yaml:"latestCompleted,omitempty"`
	LatestEpisode   []AnimeSummary `json:"latestEpisode,omitempty" yaml:"latestEpisode,omitempty"`
	TopUpcoming     []AnimeSummary `json:"topUpcoming,omitempty" yaml:"topUpcoming,omitempty"`
	RecentlyAdded   []AnimeSummary `json:"recentlyAdded,omitempty" yaml:"recentlyAdded,omitempty"`
	Genres          []string       `json:"genres,omitempty" yaml:"genres,omitempty"`
}

// SectionCounts reports how many entries each list section holds
func (h *Home) SectionCounts() map[string]int {
	return map[string]int{
		"spotlights":      len(h.Spotlights),
		"trending":        len(h.Trending),
		"topTen":          len(h.TopTen.Today) + len(h.TopTen.Week) + len(h.TopTen.Month),
		"schedule":        len(h.Today.Schedule),
		"topAiring":       len(h.TopAiring),
		"mostPopular":     len(h.MostPopular),
		"mostFavorite":    len(h.MostFavorite),
		"latestCompleted": len(h.LatestCompleted),
		"latestEpisode":   len(h.LatestEpisode),
		"topUpcoming":     len(h.TopUpcoming),
		"recentlyAdded":   len(h.RecentlyAdded),
	}
}

// AnimeDetail is the main block of an info response
type AnimeDetail struct {
	ID            string                     `json:"id" yaml:"id"`
	DataID        FlexString                 `json:"data_id,omitempty" yaml:"data_id,omitempty"`
	Title         string                     `json:"title" yaml:"title"`
	JapaneseTitle string                     `json:"japanese_title,omitempty" yaml:"japanese_title,omitempty"`
	Poster        string                     `json:"poster,omitempty" yaml:"poster,omitempty"`
	ShowType      string                     `json:"showType,omitempty" yaml:"showType,omitempty"`
	AdultContent  bool                       `json:"adultContent,omitempty" yaml:"adultContent,omitempty"`
	AnimeInfo     map[string]json.RawMessage `json:"animeInfo,omitempty" yaml:"-"`
}

// Season links to another entry of the same franchise
type Season struct {
	ID           string     `json:"id" yaml:"id"`
	DataNumber   FlexString `json:"data_number,omitempty" yaml:"data_number,omitempty"`
	DataID       FlexString `json:"data_id,omitempty" yaml:"data_id,omitempty"`
	Season       string     `json:"season,omitempty" yaml:"season,omitempty"`
	Title        string     `json:"title,omitempty" yaml:"title,omitempty"`
	SeasonPoster string     `json:"season_poster,omitempty" yaml:"season_poster,omitempty"`
}

// AnimeInfo is the result of the info endpoint
type AnimeInfo struct {
	Data    AnimeDetail `json:"data" yaml:"data"`
	Seasons []Season    `json:"seasons,omitempty" yaml:"seasons,omitempty"`
}

// Episode is one entry of an episode list
type Episode struct {
	EpisodeNo     FlexString `json:"episode_no" yaml:"episode_no"`
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title,omitempty" yaml:"title,omitempty"`
	JapaneseTitle string     `json:"japanese_title,omitempty" yaml:"japanese_title,omitempty"`
	Filler        bool       `json:"filler,omitempty" yaml:"filler,omitempty"`
}

// Episodes is the result of the episodes endpoint
type Episodes struct {
	TotalEpisodes FlexString `json:"totalEpisodes" yaml:"totalEpisodes"`
	Episodes      []Episode  `json:"episodes" yaml:"episodes"`
}

// Server is a playback server offered for an episode
type Server struct {
	Type       string     `json:"type" yaml:"type"`
	DataID     FlexString `json:"data_id,omitempty" yaml:"data_id,omitempty"`
	ServerID   FlexString `json:"server_id,omitempty" yaml:"server_id,omitempty"`
	ServerName string     `json:"serverName" yaml:"serverName"`
}

// TimeRange marks intro or outro boundaries in seconds
type TimeRange struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Track is a subtitle or thumbnail track
type Track struct {
	File    string `json:"file" yaml:"file"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Default bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

// StreamLink is one resolved source of an episode
type StreamLink struct {
	ID   FlexString `json:"id,omitempty" yaml:"id,omitempty"`
	Type string     `json:"type,omitempty" yaml:"type,omitempty"`
	Link struct {
		File string `json:"file" yaml:"file"`
		Type string `json:"type,omitempty" yaml:"type,omitempty"`
	} `json:"link" yaml:"link"`
	Tracks []Track    `json:"tracks,omitempty" yaml:"tracks,omitempty"`
	Intro  *TimeRange `json:"intro,omitempty" yaml:"intro,omitempty"`
	Outro  *TimeRange `json:"outro,omitempty" yaml:"outro,omitempty"`
	Server string     `json:"server,omitempty" yaml:"server,omitempty"`
}

// StreamInfo is the result of the stream endpoint
type StreamInfo struct {
	StreamingLink []StreamLink `json:"streamingLink" yaml:"streamingLink"`
	Servers       []Server     `json:"servers,omitempty" yaml:"servers,omitempty"`
}

// Qtip is the hover preview of an anime
type Qtip struct {
	Title         string     `json:"title" yaml:"title"`
	Rating        string     `json:"rating,omitempty" yaml:"rating,omitempty"`
	Quality       string     `json:"quality,omitempty" yaml:"quality,omitempty"`
	SubCount      FlexString `json:"subCount,omitempty" yaml:"subCount,omitempty"`
	DubCount      FlexString `json:"dubCount,omitempty" yaml:"dubCount,omitempty"`
	EpisodeCount  FlexString `json:"episodeCount,omitempty" yaml:"episodeCount,omitempty"`
	Type          string     `json:"type,omitempty" yaml:"type,omitempty"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty"`
	JapaneseTitle string     `json:"japaneseTitle,omitempty" yaml:"japaneseTitle,omitempty"`
	AiredDate     string     `json:"airedDate,omitempty" yaml:"airedDate,omitempty"`
	Status        string     `json:"status,omitempty" yaml:"status,omitempty"`
	Genres        []string   `json:"genres,omitempty" yaml:"genres,omitempty"`
	WatchLink     string     `json:"watchLink,omitempty" yaml:"watchLink,omitempty"`
}

// Suggestion is a search-as-you-type hit
type Suggestion struct {
	ID            string     `json:"id" yaml:"id"`
	DataID        FlexString `json:"data_id,omitempty" yaml:"data_id,omitempty"`
	Poster        string     `json:"poster,omitempty" yaml:"poster,omitempty"`
	Title         string     `json:"title" yaml:"title"`
	JapaneseTitle string     `json:"japanese_title,omitempty" yaml:"japanese_title,omitempty"`
	ReleaseDate   string     `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
	ShowType      string     `json:"showType,omitempty" yaml:"showType,omitempty"`
	Duration      string     `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// ScheduleEntry is one airing slot of a day
type ScheduleEntry struct {
	ID            string     `json:"id" yaml:"id"`
	DataID        FlexString `json:"data_id,omitempty" yaml:"data_id,omitempty"`
	Title         string     `json:"title" yaml:"title"`
	JapaneseTitle string     `json:"japanese_title,omitempty" yaml:"japanese_title,omitempty"`
	ReleaseDate   string     `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
	Time          string     `json:"time,omitempty" yaml:"time,omitempty"`
	EpisodeNo     FlexString `json:"episode_no,omitempty" yaml:"episode_no,omitempty"`
}

// NextEpisode is the result of the per-anime schedule endpoint
type NextEpisode struct {
	NextEpisodeSchedule string `json:"nextEpisodeSchedule" yaml:"nextEpisodeSchedule"`
}

// Person is a character or voice actor card
type Person struct {
	ID     string `json:"id" yaml:"id"`
	Poster string `json:"poster,omitempty" yaml:"poster,omitempty"`
	Name   string `json:"name" yaml:"name"`
	Cast   string `json:"cast,omitempty" yaml:"cast,omitempty"`
}

// CharacterCast pairs a character with its voice actors
type CharacterCast struct {
	Character   Person   `json:"character" yaml:"character"`
	VoiceActors []Person `json:"voiceActors,omitempty" yaml:"voiceActors,omitempty"`
}

// CharacterPage is one page of the character list endpoint
type CharacterPage struct {
	CurrentPage FlexString      `json:"currentPage" yaml:"currentPage"`
	TotalPages  FlexString      `json:"totalPages" yaml:"totalPages"`
	Data        []CharacterCast `json:"data" yaml:"data"`
}

// CategoryPage is one page of a category listing
type CategoryPage struct {
	Data       []AnimeSummary `json:"data" yaml:"data"`
	TotalPages FlexString     `json:"totalPages" yaml:"totalPages"`
}

// SearchPage is one page of search results
type SearchPage struct {
	Data      []AnimeSummary `json:"data" yaml:"data"`
	TotalPage FlexString     `json:"totalPage" yaml:"totalPage"`
}
