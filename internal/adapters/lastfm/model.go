package lastfm

import "encoding/xml"

type (
	LastFM struct {
		XMLName      xml.Name     `xml:"lfm"`
		Status       string       `xml:"status,attr"`
		Error        Error        `xml:"error"`
		RecentTracks RecentTracks `xml:"recenttracks"`
	}

	Error struct {
		Code  uint   `xml:"code,attr"`
		Value string `xml:",chardata"`
	}

	Image struct {
		Text string `xml:",chardata"`
		Size string `xml:"size,attr"`
	}

	RecentTracks struct {
		User   string        `xml:"user,attr"`
		Total  int           `xml:"total,attr"`
		Tracks []RecentTrack `xml:"track"`
	}

	RecentTrack struct {
		NowPlaying bool   `xml:"nowplaying,attr"`
		Name       string `xml:"name"`
		MBID       string `xml:"mbid"`
		URL        string `xml:"url"`
		Artist     struct {
			Text string `xml:",chardata"`
			MBID string `xml:"mbid,attr"`
		} `xml:"artist"`
		Album struct {
			Text string `xml:",chardata"`
			MBID string `xml:"mbid,attr"`
		} `xml:"album"`
		Image []Image `xml:"image"`
		Date  struct {
			Text string `xml:",chardata"`
			UTS  string `xml:"uts,attr"`
		} `xml:"date"`
	}

	// Station is the JSON payload of the last.fm web player station endpoints.
	Station struct {
		Playlist []StationTrack `json:"playlist"`
	}

	StationTrack struct {
		Name    string `json:"name"`
		URL     string `json:"url"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
	}
)
