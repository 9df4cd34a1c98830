package category

import "fmt"

// Nyaa is the category taxonomy of nyaa.si.
type Nyaa uint8

const (
	NyaaAll Nyaa = iota
	NyaaAnime
	NyaaAnimeMusicVideo
	NyaaAnimeEnglishTranslated
	NyaaAnimeNonEnglishTranslated
	NyaaAnimeRaw
	NyaaAudio
	NyaaAudioLossless
	NyaaAudioLossy
	NyaaLiterature
	NyaaLiteratureEnglishTranslated
	NyaaLiteratureNonEnglishTranslated
	NyaaLiteratureRaw
	NyaaLiveAction
	NyaaLiveActionEnglishTranslated
	NyaaLiveActionIdol
	NyaaLiveActionNonEnglishTranslated
	NyaaLiveActionRaw
	NyaaPictures
	NyaaPicturesGraphics
	NyaaPicturesPhotos
	NyaaSoftware
	NyaaSoftwareApplications
	NyaaSoftwareGames
)

var nyaaCategories = []Nyaa{
	NyaaAll,
	NyaaAnime,
	NyaaAnimeMusicVideo,
	NyaaAnimeEnglishTranslated,
	NyaaAnimeNonEnglishTranslated,
	NyaaAnimeRaw,
	NyaaAudio,
	NyaaAudioLossless,
	NyaaAudioLossy,
	NyaaLiterature,
	NyaaLiteratureEnglishTranslated,
	NyaaLiteratureNonEnglishTranslated,
	NyaaLiteratureRaw,
	NyaaLiveAction,
	NyaaLiveActionEnglishTranslated,
	NyaaLiveActionIdol,
	NyaaLiveActionNonEnglishTranslated,
	NyaaLiveActionRaw,
	NyaaPictures,
	NyaaPicturesGraphics,
	NyaaPicturesPhotos,
	NyaaSoftware,
	NyaaSoftwareApplications,
	NyaaSoftwareGames,
}

// NyaaCategories lists every nyaa.si category in site order.
func NyaaCategories() []Nyaa {
	return append([]Nyaa(nil), nyaaCategories...)
}

// ParseNyaa accepts a wire code ("1_4") or a name ("anime-raw").
func ParseNyaa(s string) (Nyaa, error) {
	return Parse(s, nyaaCategories, Nyaa.Name)
}

func (c Nyaa) String() string {
	switch c {
	case NyaaAll:
		return "0_0"
	case NyaaAnime:
		return "1_0"
	case NyaaAnimeMusicVideo:
		return "1_1"
	case NyaaAnimeEnglishTranslated:
		return "1_2"
	case NyaaAnimeNonEnglishTranslated:
		return "1_3"
	case NyaaAnimeRaw:
		return "1_4"
	case NyaaAudio:
		return "2_0"
	case NyaaAudioLossless:
		return "2_1"
	case NyaaAudioLossy:
		return "2_2"
	case NyaaLiterature:
		return "3_0"
	case NyaaLiteratureEnglishTranslated:
		return "3_1"
	case NyaaLiteratureNonEnglishTranslated:
		return "3_2"
	case NyaaLiteratureRaw:
		return "3_3"
	case NyaaLiveAction:
		return "4_0"
	case NyaaLiveActionEnglishTranslated:
		return "4_1"
	case NyaaLiveActionIdol:
		return "4_2"
	case NyaaLiveActionNonEnglishTranslated:
		return "4_3"
	case NyaaLiveActionRaw:
		return "4_4"
	case NyaaPictures:
		return "5_0"
	case NyaaPicturesGraphics:
		return "5_1"
	case NyaaPicturesPhotos:
		return "5_2"
	case NyaaSoftware:
		return "6_0"
	case NyaaSoftwareApplications:
		return "6_1"
	case NyaaSoftwareGames:
		return "6_2"
	default:
		return fmt.Sprintf("Nyaa(%d)", uint8(c))
	}
}

// Name is the kebab-case name used by the CLI and the HTTP API.
func (c Nyaa) Name() string {
	switch c {
	case NyaaAll:
		return "all"
	case NyaaAnime:
		return "anime"
	case NyaaAnimeMusicVideo:
		return "anime-music-video"
	case NyaaAnimeEnglishTranslated:
		return "anime-english-translated"
	case NyaaAnimeNonEnglishTranslated:
		return "anime-non-english-translated"
	case NyaaAnimeRaw:
		return "anime-raw"
	case NyaaAudio:
		return "audio"
	case NyaaAudioLossless:
		return "audio-lossless"
	case NyaaAudioLossy:
		return "audio-lossy"
	case NyaaLiterature:
		return "literature"
	case NyaaLiteratureEnglishTranslated:
		return "literature-english-translated"
	case NyaaLiteratureNonEnglishTranslated:
		return "literature-non-english-translated"
	case NyaaLiteratureRaw:
		return "literature-raw"
	case NyaaLiveAction:
		return "live-action"
	case NyaaLiveActionEnglishTranslated:
		return "live-action-english-translated"
	case NyaaLiveActionIdol:
		return "live-action-idol"
	case NyaaLiveActionNonEnglishTranslated:
		return "live-action-non-english-translated"
	case NyaaLiveActionRaw:
		return "live-action-raw"
	case NyaaPictures:
		return "pictures"
	case NyaaPicturesGraphics:
		return "pictures-graphics"
	case NyaaPicturesPhotos:
		return "pictures-photos"
	case NyaaSoftware:
		return "software"
	case NyaaSoftwareApplications:
		return "software-applications"
	case NyaaSoftwareGames:
		return "software-games"
	default:
		return ""
	}
}
