package category

import "fmt"

// Sukebei is the category taxonomy of sukebei.nyaa.si.
type Sukebei uint8

const (
	SukebeiAll Sukebei = iota
	SukebeiArt
	SukebeiArtAnime
	SukebeiArtDoujinshi
	SukebeiArtGames
	SukebeiArtManga
	SukebeiArtPictures
	SukebeiRealLife
	SukebeiRealLifePhotobooks
	SukebeiRealLifeVideos
)

var sukebeiCategories = []Sukebei{
	SukebeiAll,
	SukebeiArt,
	SukebeiArtAnime,
	SukebeiArtDoujinshi,
	SukebeiArtGames,
	SukebeiArtManga,
	SukebeiArtPictures,
	SukebeiRealLife,
	SukebeiRealLifePhotobooks,
	SukebeiRealLifeVideos,
}

func SukebeiCategories() []Sukebei {
	return append([]Sukebei(nil), sukebeiCategories...)
}

func ParseSukebei(s string) (Sukebei, error) {
	return Parse(s, sukebeiCategories, Sukebei.Name)
}

func (c Sukebei) String() string {
	switch c {
	case SukebeiAll:
		return "0_0"
	case SukebeiArt:
		return "1_0"
	case SukebeiArtAnime:
		return "1_1"
	case SukebeiArtDoujinshi:
		return "1_2"
	case SukebeiArtGames:
		return "1_3"
	case SukebeiArtManga:
		return "1_4"
	case SukebeiArtPictures:
		return "1_5"
	case SukebeiRealLife:
		return "2_0"
	case SukebeiRealLifePhotobooks:
		return "2_1"
	case SukebeiRealLifeVideos:
		return "2_2"
	default:
		return fmt.Sprintf("Sukebei(%d)", uint8(c))
	}
}

func (c Sukebei) Name() string {
	switch c {
	case SukebeiAll:
		return "all"
	case SukebeiArt:
		return "art"
	case SukebeiArtAnime:
		return "art-anime"
	case SukebeiArtDoujinshi:
		return "art-doujinshi"
	case SukebeiArtGames:
		return "art-games"
	case SukebeiArtManga:
		return "art-manga"
	case SukebeiArtPictures:
		return "art-pictures"
	case SukebeiRealLife:
		return "real-life"
	case SukebeiRealLifePhotobooks:
		return "real-life-photobooks"
	case SukebeiRealLifeVideos:
		return "real-life-videos"
	default:
		return ""
	}
}
