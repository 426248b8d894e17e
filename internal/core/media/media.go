// Package media flattens raw scraper post payloads into VideoMetadata
// Every accessor is total: a missing key, a null or a value of the wrong
// type yields the field default
package media

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"creatorscout/internal/core/score"
)

// VideoMetadata is the flat record ranked and stored per creator
type VideoMetadata struct {
	LikeCount        int64    `json:"like_count"`
	CommentCount     int64    `json:"comment_count"`
	PlayCount        int64    `json:"play_count"`
	HasLiked         bool     `json:"has_liked"`
	CaptionText      string   `json:"caption_text"`
	Hashtags         []string `json:"hashtags"`
	TaggedAccounts   []string `json:"tagged_accounts"`
	OriginalSound    *string  `json:"original_sound"`
	VideoQuality     []int64  `json:"video_quality"`
	VideoDuration    float64  `json:"video_duration"`
	HasAudio         bool     `json:"has_audio"`
	VideoURL         string   `json:"video_url"`
	AccountPrivate   bool     `json:"account_private"`
	AccountVerified  bool     `json:"account_verified"`
	ProfilePicURL    string   `json:"profile_pic_url"`
	Username         string   `json:"username"`
	CanViewerSave    bool     `json:"can_viewer_save"`
	CanViewerReshare bool     `json:"can_viewer_reshare"`
	MashupAllowed    bool     `json:"mashup_allowed"`
	MashupCount      int64    `json:"mashup_count"`
	LoggingInfoToken string   `json:"logging_info_token"`
	TrackingToken    string   `json:"tracking_token"`
	TaggedBrands     []string `json:"tagged_brands"`
}

// Counters returns the engagement counters used for scoring
func (v VideoMetadata) Counters() score.Counters {
	return score.Counters{Likes: v.LikeCount, Comments: v.CommentCount, Plays: v.PlayCount}
}

// Extract reads the media object of one post item
func Extract(raw any) VideoMetadata {
	item, _ := raw.(map[string]any)
	m, _ := item["media"].(map[string]any)
	return FromMedia(m)
}

// ExtractItems extracts every item of data.items that carries a non empty media object
func ExtractItems(envelope any) []VideoMetadata {
	env, _ := envelope.(map[string]any)
	data, _ := env["data"].(map[string]any)
	items, _ := data["items"].([]any)
	out := make([]VideoMetadata, 0, len(items))
	for _, it := range items {
		item, _ := it.(map[string]any)
		m, _ := item["media"].(map[string]any)
		if len(m) == 0 {
			continue
		}
		out = append(out, FromMedia(m))
	}
	return out
}

// FromMedia builds VideoMetadata from a media object, nil is allowed
func FromMedia(m map[string]any) VideoMetadata {
	v := VideoMetadata{
		LikeCount:        intOr(m["like_count"], 0),
		CommentCount:     intOr(m["comment_count"], 0),
		PlayCount:        intOr(m["play_count"], 0),
		HasLiked:         boolOr(m["has_liked"], false),
		VideoDuration:    floatOr(m["video_duration"], 0),
		HasAudio:         boolOr(m["has_audio"], false),
		CanViewerSave:    boolOr(m["can_viewer_save"], false),
		CanViewerReshare: boolOr(m["can_viewer_reshare"], false),
		LoggingInfoToken: strOr(m["logging_info_token"], ""),
		TrackingToken:    strOr(m["organic_tracking_token"], ""),
		Hashtags:         []string{},
		TaggedAccounts:   []string{},
		TaggedBrands:     []string{},
		VideoQuality:     []int64{},
	}

	if caption, ok := m["caption"].(map[string]any); ok {
		v.CaptionText = strOr(caption["text"], "")
	}
	for _, w := range strings.Fields(v.CaptionText) {
		if strings.HasPrefix(w, "#") {
			v.Hashtags = append(v.Hashtags, w)
		}
	}

	v.TaggedAccounts, v.TaggedBrands = tags(m["usertags"])

	clips, _ := m["clips_metadata"].(map[string]any)
	if sound, ok := clips["original_sound_info"].(map[string]any); ok {
		v.OriginalSound = idOf(sound["audio_asset_id"])
	}
	if mashup, ok := clips["mashup_info"].(map[string]any); ok {
		v.MashupAllowed = boolOr(mashup["mashups_allowed"], false)
		v.MashupCount = intOr(mashup["non_privacy_filtered_mashups_media_count"], 0)
	}

	versions, _ := m["video_versions"].([]any)
	for i, vv := range versions {
		ver, _ := vv.(map[string]any)
		if i == 0 {
			v.VideoURL = strOr(ver["url"], "")
		}
		if w, ok := ver["width"]; ok {
			v.VideoQuality = append(v.VideoQuality, intOr(w, 0))
		}
	}

	user, _ := m["user"].(map[string]any)
	v.AccountPrivate = boolOr(user["is_private"], true)
	v.AccountVerified = boolOr(user["is_verified"], false)
	v.ProfilePicURL = strOr(user["profile_pic_url"], "")
	v.Username = strOr(user["username"], "")
	return v
}

// tags returns usernames of every tagged account and of the verified ones
func tags(raw any) (accounts, brands []string) {
	accounts, brands = []string{}, []string{}
	usertags, _ := raw.(map[string]any)
	in, _ := usertags["in"].([]any)
	for _, t := range in {
		tag, _ := t.(map[string]any)
		user, ok := tag["user"].(map[string]any)
		if !ok {
			continue
		}
		name, present := user["username"]
		if !present {
			continue
		}
		handle := strOr(name, "")
		accounts = append(accounts, handle)
		if truthy(user["is_verified"]) && handle != "" {
			brands = append(brands, handle)
		}
	}
	return accounts, brands
}

func idOf(v any) *string {
	switch x := v.(type) {
	case string:
		return &x
	case json.Number:
		s := x.String()
		return &s
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		return &s
	}
	return nil
}

func strOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func boolOr(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	case float64:
		return x != 0
	}
	return false
}

func intOr(v any, def int64) int64 {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil && !math.IsInf(f, 0) {
			return int64(f)
		}
	case float64:
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			return int64(x)
		}
	case int:
		return int64(x)
	case int64:
		return x
	}
	return def
}

func floatOr(v any, def float64) float64 {
	switch x := v.(type) {
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f
		}
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	}
	return def
}
