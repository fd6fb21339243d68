package filetype

// Category is one recognized, previewable file type and the extensions that
// map to it.
type Category struct {
	Name       string
	Extensions []string
}

const (
	TypeDirectory = "directory"
	TypeImage     = "image"
	TypeVideo     = "video"
	TypeAudio     = "audio"
	TypeText      = "text"
)

var (
	Image = Category{
		Name: TypeImage,
		Extensions: []string{
			".apng", ".avif", ".bmp", ".cur", ".gif", ".ico", ".jfif", ".jpeg", ".jpg",
			".pjp", ".pjpeg", ".png", ".svg", ".tif", ".tiff", ".webp",
		},
	}
	Video = Category{
		Name:       TypeVideo,
		Extensions: []string{".mp4", ".webm", ".ogv", ".m4v", ".mov"},
	}
	Audio = Category{
		Name:       TypeAudio,
		Extensions: []string{".mp3", ".flac", ".wav", ".ogg", ".m4a", ".aac", ".opus"},
	}
	Text = Category{
		Name: TypeText,
		Extensions: []string{
			".txt", ".md", ".log", ".json", ".yml", ".yaml", ".ini", ".toml", ".csv",
			".js", ".ts", ".go", ".c", ".cpp", ".h", ".html", ".css", ".sh", ".bat",
		},
	}
)

// Categories lists every category that can be enabled, keyed by name.
var Categories = map[string]Category{
	TypeImage: Image,
	TypeVideo: Video,
	TypeAudio: Audio,
	TypeText:  Text,
}

// DefaultCategoryNames are the categories enabled when nothing else is
// configured.
var DefaultCategoryNames = []string{TypeImage, TypeVideo, TypeAudio}
