package browse

// Entry is a directory entry as read from the filesystem for a single page
// fetch. Entries are never cached between requests.
type Entry struct {
	Name         string
	AbsolutePath string
	IsDir        bool
	Size         int64
}

// Item is the client-facing projection of an Entry, or the synthetic BACK
// entry on the first page.
type Item struct {
	Name             string  `json:"name"`
	FileType         *string `json:"fileType"`
	IsDir            bool    `json:"isDir"`
	EncodedURI       string  `json:"encodedURI"`
	Size             int64   `json:"size"`
	PreviewAvailable bool    `json:"previewAvailable"`
}

// Page is one bounded batch of items. NextPosition points just past the last
// real item, and HasMore is true when at least one more entry is unread.
type Page struct {
	Items        []Item
	NextPosition int64
	HasMore      bool
}

// BrowseResponse contains the response for the browse endpoint.
type BrowseResponse struct {
	Items     []Item `json:"items"`
	NextToken string `json:"nextToken"`
	HasMore   bool   `json:"hasMore"`
	Dir       string `json:"dir"`
}
