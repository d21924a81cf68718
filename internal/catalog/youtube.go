package catalog

import "regexp"

// youtubeRe accepts the common YouTube URL shapes found in published sheets:
// watch-query, short-link, embed, and user/channel-relative paths. It is
// deliberately permissive; the 11-character length check on the captured id
// is what actually gates recognition.
var youtubeRe = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

// YouTubeID extracts the video id from a link, or "" if the link is not a
// recognized YouTube video URL.
func YouTubeID(link string) string {
	m := youtubeRe.FindStringSubmatch(link)
	if m == nil || len(m[2]) != 11 {
		return ""
	}
	return m[2]
}

// ThumbnailURL returns the standard YouTube thumbnail for a video id.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/hqdefault.jpg"
}

// EmbedURL returns the embeddable player URL for a video id.
func EmbedURL(videoID string) string {
	return "https://www.youtube.com/embed/" + videoID
}
